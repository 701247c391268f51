// Package screenshot renders the interpreter display to image and text files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/retroenv/retrochip8/internal/vm"
	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for scale factors below 1.
var ErrInvalidScale = errors.New("invalid scale factor")

var (
	foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	background = color.RGBA{A: 0xFF}
)

// Image converts the display to an image with one image pixel per display pixel.
func Image(d *vm.Display) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, vm.DisplayWidth, vm.DisplayHeight))
	for y := range vm.DisplayHeight {
		for x := range vm.DisplayWidth {
			c := background
			if d.Pixel(x, y) {
				c = foreground
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG writes the display as PNG image, every display pixel is
// upscaled to scale x scale image pixels.
func WritePNG(w io.Writer, d *vm.Display, scale int) error {
	if scale < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	src := Image(d)
	dst := image.NewRGBA(image.Rect(0, 0, vm.DisplayWidth*scale, vm.DisplayHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteText writes the display as text, '#' marks a set pixel.
func WriteText(w io.Writer, d *vm.Display) error {
	if _, err := io.WriteString(w, d.String()); err != nil {
		return fmt.Errorf("writing display text: %w", err)
	}
	return nil
}
