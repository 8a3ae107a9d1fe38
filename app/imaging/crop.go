package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	_ "image/jpeg" // decode support for jpeg uploads
)

// ErrDegenerate marks a rectangle whose clamped box has no area. Callers
// drop the rectangle and continue, they do not fail the batch.
var ErrDegenerate = errors.New("degenerate crop box")

// Box is an integer crop window in image pixel space.
type Box struct {
	Left, Top, Right, Bottom int
}

// ClampBox clamps a floating-point rectangle to the image bounds. The
// input may be drawn partially or fully outside the image, backward, or
// zero-sized.
func ClampBox(imgW, imgH int, x, y, w, h float64) (Box, error) {
	left := max(0, round(x))
	top := max(0, round(y))
	right := min(imgW, round(x+w))
	bottom := min(imgH, round(y+h))

	if right <= left || bottom <= top {
		return Box{}, ErrDegenerate
	}
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// Open decodes an image file and returns it along with its pixel bounds.
func Open(path string) (image.Image, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	b := img.Bounds()
	return img, b.Dx(), b.Dy(), nil
}

// SaveCrop writes the sub-image described by box to path as PNG.
func SaveCrop(img image.Image, box Box, path string) error {
	si, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return fmt.Errorf("image type %T does not support cropping", img)
	}
	cropped := si.SubImage(image.Rect(box.Left, box.Top, box.Right, box.Bottom))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create crop file: %w", err)
	}
	if err := png.Encode(out, cropped); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode crop: %w", err)
	}
	return out.Close()
}
