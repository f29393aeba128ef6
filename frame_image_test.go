package pixframe

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// checker returns a 2x2 opaque image: red, green on top; blue, white below.
func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestView_Bounds(t *testing.T) {
	f, _ := newTestFrame(t, 8, 6)
	if got := f.View().Bounds(); got != image.Rect(0, 0, 8, 6) {
		t.Errorf("full mode Bounds() = %v, want (0,0)-(8,6)", got)
	}

	f.Select(Sel(2, 1, 3.5, 2))
	if got := f.View().Bounds(); got != image.Rect(0, 0, 4, 2) {
		t.Errorf("clipped Bounds() = %v, want (0,0)-(4,2)", got)
	}

	f.Select(Sel(0, 0, -2, 3))
	if got := f.View().Bounds(); !got.Empty() {
		t.Errorf("negative selection Bounds() = %v, want empty", got)
	}

	f.Release()
	if got := f.View().Bounds(); !got.Empty() {
		t.Errorf("released Bounds() = %v, want empty", got)
	}
}

func TestView_SetAndAtTranslate(t *testing.T) {
	f, b := newTestFrame(t, 8, 8)
	f.Select(Sel(2, 2, 4, 4))
	v := f.View()

	v.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if got := b.PixelAt(3, 3); got != RGB(10, 20, 30) {
		t.Errorf("buffer (3,3) = %#06x, want %#06x", uint32(got), uint32(RGB(10, 20, 30)))
	}
	if got := FromColor(v.At(1, 1)); got != RGB(10, 20, 30) {
		t.Errorf("View().At(1,1) = %#06x", uint32(got))
	}
	if v.ColorModel() != ColorModel {
		t.Error("View().ColorModel() is not the package ColorModel")
	}

	before := snapshot(b)
	v.Set(4, 0, White)
	if got := changed(before, b); len(got) != 0 {
		t.Errorf("Set outside the selection wrote %v", got)
	}
}

func TestView_ReachesPartialColumn(t *testing.T) {
	f, b := newTestFrame(t, 8, 4)
	f.Select(Sel(2, 0, 3.5, 1))

	draw.Draw(f.View(), f.View().Bounds(), image.NewUniform(color.RGBA{R: 90, A: 255}), image.Point{}, draw.Src)

	// Columns 2..5: the half-covered column 5 is written just like SetPixel(3, 0).
	for x := 0; x < 8; x++ {
		want := Black
		if x >= 2 && x <= 5 {
			want = RGB(90, 0, 0)
		}
		if got := b.PixelAt(x, 0); got != want {
			t.Errorf("(%d,0) = %#06x, want %#06x", x, uint32(got), uint32(want))
		}
	}
}

func TestView_WithImageDraw(t *testing.T) {
	f, b := newTestFrame(t, 6, 6)
	f.Select(Sel(1, 1, 2, 2))

	draw.Draw(f.View(), image.Rect(-10, -10, 10, 10), image.NewUniform(color.RGBA{G: 200, A: 255}), image.Point{}, draw.Src)

	var n int
	for _, c := range b.Data() {
		if c == RGB(0, 200, 0) {
			n++
		}
	}
	if n != 4 {
		t.Errorf("draw.Draw filled %d cells, want 4 (the selection)", n)
	}
}

func TestDrawImage_NearestScale(t *testing.T) {
	f, b := newTestFrame(t, 6, 6)

	f.DrawImage(checker(), V(1, 1), V(4, 4), InterpNearest)

	tests := []struct {
		x, y int
		want Color
	}{
		{1, 1, Red}, {2, 2, Red},
		{3, 1, Green}, {4, 2, Green},
		{1, 3, Blue}, {2, 4, Blue},
		{3, 3, White}, {4, 4, White},
		{0, 0, Black}, {5, 5, Black},
	}
	for _, tt := range tests {
		if got := b.PixelAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %#06x, want %#06x", tt.x, tt.y, uint32(got), uint32(tt.want))
		}
	}
}

func TestDrawImage_Interpolations(t *testing.T) {
	for _, m := range []Interpolation{InterpNearest, InterpBilinear, InterpCatmullRom} {
		f, b := newTestFrame(t, 4, 4)
		src := image.NewUniform(color.RGBA{R: 50, G: 60, B: 70, A: 255})
		img := image.NewRGBA(image.Rect(0, 0, 3, 3))
		draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)

		f.DrawImage(img, V(0, 0), V(4, 4), m)

		for i, c := range b.Data() {
			if c != RGB(50, 60, 70) {
				t.Errorf("interp %d: cell %d = %#06x, want uniform fill", m, i, uint32(c))
				break
			}
		}
	}
}

func TestDrawImage_Clipped(t *testing.T) {
	f, b := newTestFrame(t, 8, 8)
	f.Select(Sel(4, 4, 2, 2))

	f.DrawImage(checker(), V(0, 0), V(8, 8), InterpNearest)

	var written int
	for _, c := range b.Data() {
		if c != Black {
			written++
		}
	}
	if written != 4 {
		t.Errorf("clipped DrawImage wrote %d cells, want 4", written)
	}
	// The selection shows the top-left quarter of the scaled red cell.
	if got := b.PixelAt(4, 4); got != Red {
		t.Errorf("(4,4) = %#06x, want red", uint32(got))
	}
}

func TestBlit_TransparentKeepsFrame(t *testing.T) {
	f, b := newTestFrame(t, 4, 4)
	b.Fill(Blue)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{}) // transparent

	f.Blit(src, V(1, 2))

	if got := b.PixelAt(1, 2); got != Red {
		t.Errorf("(1,2) = %#06x, want red", uint32(got))
	}
	if got := b.PixelAt(2, 2); got != Blue {
		t.Errorf("(2,2) = %#06x, want blue under transparent pixel", uint32(got))
	}
}

func TestBlit_Nil(t *testing.T) {
	f, b := newTestFrame(t, 2, 2)
	before := snapshot(b)
	f.Blit(nil, V(0, 0))
	f.DrawImage(nil, V(0, 0), V(2, 2), InterpNearest)
	if got := changed(before, b); len(got) != 0 {
		t.Errorf("nil source wrote %v", got)
	}
}
