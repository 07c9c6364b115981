package icon

import (
	"errors"
	"fmt"
)

// Error kinds. Callers classify failures with errors.Is.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrEmptyLabel         = errors.New("empty label")
	ErrIO                 = errors.New("io failure")
	ErrFontUnavailable    = errors.New("font unavailable")
)

// SpecError reports which icon a generation run stopped on.
type SpecError struct {
	Filename string
	Err      error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Filename, e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }
