package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/bmp"
)

func testPattern() *Canvas[uint32] {
	c := New[uint32](4, 4)
	c.Fill(EncodeRGB(200, 100, 50))
	c.SubView(V(1, 1), V(2, 2)).Fill(EncodeRGB(10, 20, 30))
	return c
}

func TestImage(t *testing.T) {
	c := testPattern()
	img := c.Image(DecodeRGB)
	test.T(t, img.Bounds().Dx(), 4)
	test.T(t, img.Bounds().Dy(), 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b := DecodeRGB(c.At(x, y))
			i := img.PixOffset(x, y)
			test.T(t, img.Pix[i+0], r)
			test.T(t, img.Pix[i+1], g)
			test.T(t, img.Pix[i+2], b)
			test.T(t, img.Pix[i+3], uint8(0xFF))
		}
	}
}

func TestWritePNG(t *testing.T) {
	c := testPattern()
	buf := &bytes.Buffer{}
	test.Error(t, c.WritePNG(buf, DecodeRGB))

	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 4)
	r, g, b, _ := img.At(1, 1).RGBA()
	test.T(t, uint8(r>>8), uint8(10))
	test.T(t, uint8(g>>8), uint8(20))
	test.T(t, uint8(b>>8), uint8(30))
}

func TestWriteBMP(t *testing.T) {
	c := testPattern()
	buf := &bytes.Buffer{}
	test.Error(t, c.WriteBMP(buf, DecodeRGB))

	img, err := bmp.Decode(buf)
	test.Error(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	test.T(t, uint8(r>>8), uint8(200))
	test.T(t, uint8(g>>8), uint8(100))
	test.T(t, uint8(b>>8), uint8(50))
}

func TestWriteTIFF(t *testing.T) {
	c := testPattern()
	buf := &bytes.Buffer{}
	test.Error(t, c.WriteTIFF(buf, DecodeRGB))
	test.That(t, 0 < buf.Len())
}

func TestSaveFile(t *testing.T) {
	c := testPattern()
	dir := t.TempDir()

	for _, name := range []string{"out.ppm", "out.png", "out.bmp", "out.tif"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(dir, name)
			test.Error(t, c.SaveFile(filename, DecodeRGB))
			info, err := os.Stat(filename)
			test.Error(t, err)
			test.That(t, 0 < info.Size())
		})
	}

	err := c.SaveFile(filepath.Join(dir, "out.gif"), DecodeRGB)
	test.That(t, err != nil)
}

func TestSavePPM(t *testing.T) {
	c := New[uint32](2, 1)
	c.Set(0, 0, EncodeRGB(255, 0, 0))
	c.Set(1, 0, EncodeRGB(0, 255, 0))

	filename := filepath.Join(t.TempDir(), "out.ppm")
	test.Error(t, c.SavePPM(filename, DecodeRGB))

	data, err := os.ReadFile(filename)
	test.Error(t, err)
	test.T(t, data, []byte("P6\n2 1\n255\n\xFF\x00\x00\x00\xFF\x00"))
}
