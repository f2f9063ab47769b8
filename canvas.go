// Package raster provides a minimal in-memory pixel canvas with stride-aware
// sub-view windowing, generic coordinate-tuple arithmetic with broadcasting,
// and binary image export (PPM, PNG, BMP, TIFF).
//
// A Canvas is a view over a linear buffer of pixels of any element type. A
// top-level canvas owns or borrows its storage; sub-views alias a rectangular
// region of the parent's storage without copying. The caller is responsible
// for keeping the parent's storage alive for as long as any sub-view of it is
// in use, and for serializing concurrent access.
package raster

// Canvas is a rectangular pixel view over linear storage. The pixel at (x,y)
// is Pix[y*Stride+x] with 0 <= x < Width and 0 <= y < Height. Stride is the
// element distance between the starts of consecutive rows and is at least
// Width; it exceeds Width when the canvas is a sub-view of a larger buffer.
type Canvas[T any] struct {
	Pix    []T
	Width  int
	Height int
	Stride int
}

// New returns a canvas that owns freshly allocated storage with a stride
// equal to its width.
func New[T any](width, height int) *Canvas[T] {
	return &Canvas[T]{
		Pix:    make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Wrap returns a canvas borrowing the caller's storage. The buffer must hold
// at least stride*(height-1)+width elements; the caller keeps ownership and
// must outlive the canvas and all of its sub-views.
func Wrap[T any](pix []T, width, height, stride int) *Canvas[T] {
	return &Canvas[T]{
		Pix:    pix,
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// Empty is true for the zero-size sentinel canvas returned by degenerate
// sub-view requests. Fill and the writers treat it as a no-op.
func (c *Canvas[T]) Empty() bool {
	return c.Width == 0 || c.Height == 0
}

// At returns the pixel at (x,y), or the zero value when (x,y) is outside the
// canvas.
func (c *Canvas[T]) At(x, y int) T {
	if x < 0 || c.Width <= x || y < 0 || c.Height <= y {
		var zero T
		return zero
	}
	return c.Pix[y*c.Stride+x]
}

// Set writes the pixel at (x,y); writes outside the canvas are discarded.
func (c *Canvas[T]) Set(x, y int, v T) {
	if x < 0 || c.Width <= x || y < 0 || c.Height <= y {
		return
	}
	c.Pix[y*c.Stride+x] = v
}

// Fill writes v into every pixel of the visible Width×Height region, row by
// row. Padding columns between Width and Stride are left untouched.
func (c *Canvas[T]) Fill(v T) {
	for row := 0; row < c.Height; row++ {
		line := c.Pix[row*c.Stride : row*c.Stride+c.Width]
		for x := range line {
			line[x] = v
		}
	}
}

// SubView returns a non-owning canvas aliasing the axis-aligned rectangle
// with inclusive corners p1 and p2, given in any order. The view shares the
// parent's storage and stride; filling the view mutates exactly that
// rectangle in the parent.
//
// Identical corners yield the zero-size sentinel canvas rather than a 1×1
// view. Rectangles reaching outside the parent are clamped to the parent's
// bounds, like image.RGBA.SubImage; a rectangle entirely outside yields the
// sentinel.
func (c *Canvas[T]) SubView(p1, p2 Vec[int]) *Canvas[T] {
	x1, y1 := p1.XY()
	x2, y2 := p2.XY()
	if x1 == x2 && y1 == y2 {
		return &Canvas[T]{}
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, c.Width-1), min(y2, c.Height-1)
	if x2 < x1 || y2 < y1 {
		return &Canvas[T]{}
	}

	// The view's slice runs to the parent's full extent, not just the
	// rectangle, so that the inherited stride stays addressable on the
	// last row.
	end := min(c.Height*c.Stride, len(c.Pix))
	return &Canvas[T]{
		Pix:    c.Pix[y1*c.Stride+x1 : end],
		Width:  x2 - x1 + 1,
		Height: y2 - y1 + 1,
		Stride: c.Stride,
	}
}

// SubViewFunc is the generic-point form of SubView: xy extracts an (x,y)
// coordinate pair from an arbitrary point value. The extractor must return a
// vector of arity at least two; SubView itself is the identity-extractor
// special case.
func SubViewFunc[T any, P any](c *Canvas[T], p1, p2 P, xy func(P) Vec[int]) *Canvas[T] {
	return c.SubView(xy(p1), xy(p2))
}
