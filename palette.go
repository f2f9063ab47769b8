package raster

import (
	"github.com/lucasb-eyer/go-colorful"
)

func toColorful(c uint32) colorful.Color {
	r, g, b := DecodeRGB(c)
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

func fromColorful(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return EncodeRGB(r, g, b)
}

// Gradient returns a ramp of n packed colors blended from c0 to c1 in Lab
// space, endpoints included. Lab blending avoids the muddy midpoints that
// naive per-channel interpolation produces. A ramp of one color is c0.
func Gradient(c0, c1 uint32, n int) []uint32 {
	ramp := make([]uint32, n)
	from, to := toColorful(c0), toColorful(c1)
	for i := range ramp {
		t := 0.0
		if 1 < n {
			t = float64(i) / float64(n-1)
		}
		ramp[i] = fromColorful(from.BlendLab(to, t))
	}
	return ramp
}
