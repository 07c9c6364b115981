package icon

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Size is the width and height of every icon in pixels.
	Size = 64

	// circleInset is the gap between the canvas edge and the circle's
	// bounding box on every side.
	circleInset = 4

	// textLift raises the initial above geometric center. Tuned for the
	// 7x13 bitmap face.
	textLift = 2
)

// DefaultFace returns the typeface used for the initials.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// Render draws the icon described by s onto a fresh transparent canvas.
func Render(s Spec, face font.Face) (*image.RGBA, error) {
	if face == nil {
		return nil, ErrFontUnavailable
	}
	c, err := ParseHex(s.ColorHex)
	if err != nil {
		return nil, err
	}
	letter, err := Initial(s.Label)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, Size, Size))

	// The circle covers pixels circleInset..Size-circleInset inclusive.
	dc := gg.NewContextForRGBA(canvas)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
	center := float64(Size+1) / 2
	radius := float64(Size+1)/2 - circleInset
	dc.DrawEllipse(center, center, radius, radius)
	dc.Fill()

	_, dot := layout(face, letter)
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(letter)

	return canvas, nil
}

// GlyphBox reports where Render places the ink box of text: its measured
// width and height, centered horizontally and lifted by textLift.
func GlyphBox(face font.Face, text string) (image.Rectangle, error) {
	if face == nil {
		return image.Rectangle{}, ErrFontUnavailable
	}
	if text == "" {
		return image.Rectangle{}, fmt.Errorf("measuring glyph: %w", ErrEmptyLabel)
	}
	box, _ := layout(face, text)
	return box, nil
}

// layout measures text and returns its target ink box together with the
// baseline origin that puts the ink's top-left corner at box.Min.
func layout(face font.Face, text string) (image.Rectangle, fixed.Point26_6) {
	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (Size - w) / 2
	y := (Size-h)/2 - textLift
	box := image.Rect(x, y, x+w, y+h)
	return box, fixed.P(x-bounds.Min.X.Floor(), y-bounds.Min.Y.Floor())
}
