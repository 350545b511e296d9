package logotrim

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ride-share-app/logotrim/utils"

	// Register the WebP decoder. PNG, JPEG, GIF, BMP and TIFF are
	// registered through the imaging package imports.
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when none of the candidate input files exists.
var ErrNotFound = errors.New("file not found")

// ResolveInput returns the primary path if it exists, otherwise the fallback path.
// If neither of them exists the returned error wraps ErrNotFound.
func ResolveInput(primary, fallback string) (string, error) {
	path := primary
	if !exists(path) {
		path = fallback
	}
	if path == "" || !exists(path) {
		return path, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Load decodes the image file found at path. It returns the image
// in its original color model together with the format name.
func Load(path string) (image.Image, string, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not read the source file: %w", err)
	}
	if !strings.HasPrefix(ctype, "image/") {
		return nil, "", fmt.Errorf("the source should be an image file, got %s", ctype)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open the source file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode the source file: %w", err)
	}
	return img, format, nil
}

// Normalize converts any image type to *image.NRGBA with min-point at (0, 0).
// Images without an alpha channel become fully opaque.
func Normalize(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Rect.Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

// alphaImage makes the PNG encoder keep the alpha channel
// even when every pixel of the image is opaque.
type alphaImage struct {
	*image.NRGBA
}

func (alphaImage) Opaque() bool { return false }

// Save encodes img as PNG into the file at path, creating or truncating it.
func Save(img image.Image, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the destination file: %w", cerr)
		}
	}()

	if err := imaging.Encode(dst, alphaImage{Normalize(img)}, imaging.PNG); err != nil {
		return fmt.Errorf("unable to encode the image: %w", err)
	}
	return nil
}
