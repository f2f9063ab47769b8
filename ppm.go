package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PixelRGB maps one stored pixel value to 8-bit red, green and blue
// channels. Serialization is generic over the storage element type; the
// caller supplies the channel mapping. DecodeRGB is the mapping for packed
// uint32 pixels.
type PixelRGB[T any] func(T) (uint8, uint8, uint8)

// WritePPM serializes the canvas to w as a binary PPM (P6): an ASCII header
// "P6\n<width> <height>\n255\n" followed by width*height pixels in row-major
// order, three raw bytes each. Rows are read honoring the stride, so padding
// elements of a sub-view never leak into the output.
func (c *Canvas[T]) WritePPM(w io.Writer, rgb PixelRGB[T]) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P6\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}
	pixel := [3]byte{}
	for y := 0; y < c.Height; y++ {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width]
		for x := range row {
			pixel[0], pixel[1], pixel[2] = rgb(row[x])
			if _, err := buf.Write(pixel[:]); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// SavePPM writes the canvas to a PPM file at filename, creating or
// truncating it.
func (c *Canvas[T]) SavePPM(filename string, rgb PixelRGB[T]) error {
	return c.saveFile(filename, func(w io.Writer) error {
		return c.WritePPM(w, rgb)
	})
}

func (c *Canvas[T]) saveFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
