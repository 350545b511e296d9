package logotrim

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned by Trim when the image has no visible pixel.
var ErrEmptyImage = errors.New("could not find bounding box")

// ContentBounds returns the smallest rectangle enclosing every pixel
// with a non-zero alpha value. The rectangle is empty if there is none.
func ContentBounds(img *image.NRGBA) image.Rectangle {
	var (
		b      = img.Bounds()
		found  bool
		bounds image.Rectangle
	)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i+3] != 0 {
				if !found {
					bounds = image.Rect(x, y, x+1, y+1)
					found = true
				} else {
					if x < bounds.Min.X {
						bounds.Min.X = x
					}
					if x >= bounds.Max.X {
						bounds.Max.X = x + 1
					}
					bounds.Max.Y = y + 1
				}
			}
			i += 4
		}
	}

	return bounds
}

// Trim crops the transparent border around the image content.
// It returns the cropped image and the content bounds in source coordinates.
func Trim(img *image.NRGBA) (*image.NRGBA, image.Rectangle, error) {
	bounds := ContentBounds(img)
	if bounds.Empty() {
		return nil, bounds, ErrEmptyImage
	}
	return imaging.Crop(img, bounds), bounds, nil
}
