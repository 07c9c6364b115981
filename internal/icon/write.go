package icon

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Write encodes img as PNG at path, replacing any existing file. The parent
// directory must already exist.
func Write(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: encoding png %s: %v", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
