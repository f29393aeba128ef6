package pixframe

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
)

// maxCells bounds a single buffer so the byte charge cannot overflow.
const maxCells = math.MaxInt32

// Buffer is a rectangular array of packed colors stored row-major.
//
// A Buffer is held by at most one Frame for that frame's lifetime; the frame
// does not copy it and does not release it.
type Buffer struct {
	data     []Color
	size     Vec
	alloc    Allocator
	log      *slog.Logger
	charged  int
	released bool
}

// Verify at compile time that Buffer can be used with image/draw.
var _ interface {
	image.Image
	Set(x, y int, c color.Color)
} = (*Buffer)(nil)

// NewBuffer allocates a buffer of int(size.X) * int(size.Y) cells.
// Fractional sizes are truncated toward zero. Cells start as packed black.
//
// NewBuffer fails with [ErrInvalidSize] for negative or non-finite sizes and
// with an error wrapping [ErrAllocation] when the allocator refuses the cells.
// Nothing is charged on failure.
func NewBuffer(size Vec, opts ...Option) (*Buffer, error) {
	o := buildOptions(opts)

	if !size.IsFinite() || size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, size.X, size.Y)
	}

	w, h := math.Trunc(size.X), math.Trunc(size.Y)
	if w*h > maxCells {
		return nil, fmt.Errorf("new buffer %vx%v: %w: too many cells", w, h, ErrAllocation)
	}
	cells := int(w) * int(h)

	if err := o.alloc.Acquire(cells * CellSize); err != nil {
		o.log().Warn("pixframe: buffer allocation refused",
			"width", int(w), "height", int(h), "err", err)
		return nil, fmt.Errorf("new buffer %dx%d: %w", int(w), int(h), err)
	}

	b := &Buffer{
		data:    make([]Color, cells),
		size:    size,
		alloc:   o.alloc,
		log:     o.logger,
		charged: cells * CellSize,
	}
	b.logger().Debug("pixframe: buffer created", "width", int(w), "height", int(h))
	return b, nil
}

func (b *Buffer) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return Logger()
}

// Release frees the cells and credits the allocator.
// It is safe to call on a nil or already released buffer.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.data = nil
	allocOr(b.alloc).Release(b.charged)
	b.charged = 0
	b.logger().Debug("pixframe: buffer released",
		"width", int(b.size.X), "height", int(b.size.Y))
}

// ReleaseBuffer releases *b and sets it to nil, so releasing the same
// variable twice is a no-op.
func ReleaseBuffer(b **Buffer) {
	if b == nil || *b == nil {
		return
	}
	(*b).Release()
	*b = nil
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b == nil || b.released
}

// Size returns the size the buffer was created with, fractions included.
func (b *Buffer) Size() Vec {
	return b.size
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return int(b.size.X)
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return int(b.size.Y)
}

// Len returns the number of cells; zero once released.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the live cell slice, row-major.
func (b *Buffer) Data() []Color {
	return b.data
}

// index returns the cell index of (x, y) or -1 if it is outside the buffer.
func (b *Buffer) index(x, y int) int {
	w := b.Width()
	if x < 0 || x >= w || y < 0 || y >= b.Height() {
		return -1
	}
	i := y*w + x
	if i >= len(b.data) {
		return -1
	}
	return i
}

// PixelAt returns the color at (x, y), or Black outside the buffer.
func (b *Buffer) PixelAt(x, y int) Color {
	i := b.index(x, y)
	if i < 0 {
		return Black
	}
	return b.data[i]
}

// Fill sets every cell to c, ignoring any frame selection.
func (b *Buffer) Fill(c Color) {
	for i := range b.data {
		b.data[i] = c
	}
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}

// Set implements draw.Image. Coordinates outside the buffer are ignored.
// Set bypasses any frame selection; draw through [Frame.View] to clip.
func (b *Buffer) Set(x, y int, c color.Color) {
	i := b.index(x, y)
	if i < 0 {
		return
	}
	b.data[i] = FromColor(c)
}

// ToImage converts the buffer to an opaque image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	w, h := b.Width(), b.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if b.released {
		return img
	}
	for y := 0; y < h; y++ {
		row := b.data[y*w : (y+1)*w]
		off := y * img.Stride
		for x, c := range row {
			img.Pix[off+x*4+0] = c.R()
			img.Pix[off+x*4+1] = c.G()
			img.Pix[off+x*4+2] = c.B()
			img.Pix[off+x*4+3] = 0xff
		}
	}
	return img
}
