package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseHex converts a six-digit hex color, optionally prefixed with '#',
// into an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q: want 6 hex digits", ErrInvalidColorFormat, s)
	}
	// Base 16 without base prefix: ParseUint accepts neither signs nor
	// underscores here, so any non-hex byte fails.
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// Initial returns the uppercased first code point of label. Full case
// mapping applies, so the result may be longer than one rune.
func Initial(label string) (string, error) {
	if label == "" {
		return "", ErrEmptyLabel
	}
	_, size := utf8.DecodeRuneInString(label)
	return cases.Upper(language.Und).String(label[:size]), nil
}
