package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGradient(t *testing.T) {
	from := EncodeRGB(255, 0, 0)
	to := EncodeRGB(0, 0, 255)

	ramp := Gradient(from, to, 8)
	test.T(t, len(ramp), 8)
	test.T(t, ramp[0], from)
	test.T(t, ramp[7], to)
	test.That(t, ramp[3] != from && ramp[3] != to)

	for _, c := range ramp {
		_, _, _ = DecodeRGB(c) // all entries remain valid packed colors
		test.T(t, c>>24, uint32(0xFF))
	}
}

func TestGradientDegenerate(t *testing.T) {
	from := EncodeRGB(10, 20, 30)
	to := EncodeRGB(40, 50, 60)

	test.T(t, Gradient(from, to, 0), []uint32{})
	test.T(t, Gradient(from, to, 1), []uint32{from})

	two := Gradient(from, to, 2)
	test.T(t, two[0], from)
	test.T(t, two[1], to)
}
