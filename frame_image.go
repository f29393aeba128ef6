package pixframe

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the sampling used by [Frame.DrawImage].
type Interpolation int

// Interpolation modes.
const (
	// InterpNearest picks the closest source pixel. Exact for integer scales.
	InterpNearest Interpolation = iota

	// InterpBilinear blends the four neighboring source pixels.
	InterpBilinear

	// InterpCatmullRom uses a cubic kernel. Highest quality, slowest.
	InterpCatmullRom
)

func (m Interpolation) scaler() xdraw.Interpolator {
	switch m {
	case InterpBilinear:
		return xdraw.ApproxBiLinear
	case InterpCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// view adapts a Frame to draw.Image. Set routes through SetPixel, so every
// write is clipped like any other frame drawing.
type view struct {
	f *Frame
}

// View returns an image/draw destination over the frame. Its bounds start at
// the origin: the selection size rounded up in clipped mode, so a partial
// last column or row is still reachable, and the buffer size otherwise.
// At reads through the same coordinate translation that Set writes through.
func (f *Frame) View() draw.Image {
	return view{f: f}
}

func (v view) ColorModel() color.Model {
	return ColorModel
}

func (v view) Bounds() image.Rectangle {
	if v.f.buffer == nil {
		return image.Rectangle{}
	}
	if v.f.sub {
		return image.Rect(0, 0, ceilSpan(v.f.selection.Size.X), ceilSpan(v.f.selection.Size.Y))
	}
	return v.f.buffer.Bounds()
}

// ceilSpan rounds a selection extent up to whole cells. A non-positive or
// NaN extent spans nothing.
func ceilSpan(n float64) int {
	if !(n > 0) {
		return 0
	}
	return int(math.Ceil(min(n, maxCells)))
}

func (v view) At(x, y int) color.Color {
	if v.f.buffer == nil {
		return Black
	}
	if v.f.sub {
		ox, oy := v.f.selection.Pos.Ints()
		x, y = x+ox, y+oy
	}
	return v.f.buffer.PixelAt(x, y)
}

func (v view) Set(x, y int, c color.Color) {
	v.f.SetPixel(V(float64(x), float64(y)), FromColor(c))
}

// DrawImage scales src into the rectangle at pos with the given size,
// composited over the frame with source alpha. Pixels outside the frame's
// clip are dropped.
func (f *Frame) DrawImage(src image.Image, pos, size Vec, interp Interpolation) {
	if f == nil || f.buffer == nil || src == nil {
		return
	}
	x, y := pos.Ints()
	w, h := size.Ints()
	dr := image.Rect(x, y, x+w, y+h)
	interp.scaler().Scale(f.View(), dr, src, src.Bounds(), xdraw.Over, nil)
}

// Blit copies src unscaled with its top-left corner at pos, composited
// with source alpha.
func (f *Frame) Blit(src image.Image, pos Vec) {
	if f == nil || f.buffer == nil || src == nil {
		return
	}
	x, y := pos.Ints()
	xdraw.Copy(f.View(), image.Pt(x, y), src, src.Bounds(), xdraw.Over, nil)
}
