package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Image converts the canvas to an image.RGBA using the given channel
// mapping, with every pixel fully opaque.
func (c *Canvas[T]) Image(rgb PixelRGB[T]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width]
		for x := range row {
			r, g, b := rgb(row[x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

// WritePNG writes the canvas as a PNG image.
func (c *Canvas[T]) WritePNG(w io.Writer, rgb PixelRGB[T]) error {
	return png.Encode(w, c.Image(rgb))
}

// WriteBMP writes the canvas as a BMP image.
func (c *Canvas[T]) WriteBMP(w io.Writer, rgb PixelRGB[T]) error {
	return bmp.Encode(w, c.Image(rgb))
}

// WriteTIFF writes the canvas as an uncompressed TIFF image.
func (c *Canvas[T]) WriteTIFF(w io.Writer, rgb PixelRGB[T]) error {
	return tiff.Encode(w, c.Image(rgb), nil)
}

// SaveFile writes the canvas to filename in the format selected by its
// extension: .ppm, .png, .bmp, .tif or .tiff.
func (c *Canvas[T]) SaveFile(filename string, rgb PixelRGB[T]) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".ppm":
		write = func(w io.Writer) error { return c.WritePPM(w, rgb) }
	case ".png":
		write = func(w io.Writer) error { return c.WritePNG(w, rgb) }
	case ".bmp":
		write = func(w io.Writer) error { return c.WriteBMP(w, rgb) }
	case ".tif", ".tiff":
		write = func(w io.Writer) error { return c.WriteTIFF(w, rgb) }
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
	return c.saveFile(filename, write)
}
