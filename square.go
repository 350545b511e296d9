package logotrim

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ride-share-app/logotrim/utils"
)

// canvasColor is the fill of the padding area: white and fully transparent.
var canvasColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x00}

// Square centers the image on a transparent square canvas whose side is
// the longest edge of the image. On odd padding the extra pixel goes to
// the right or bottom side. It returns the canvas and the paste offset.
func Square(img *image.NRGBA) (*image.NRGBA, image.Point) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	side := utils.Max(w, h)

	offset := image.Pt((side-w)/2, (side-h)/2)
	canvas := imaging.New(side, side, canvasColor)

	return imaging.Paste(canvas, img, offset), offset
}
