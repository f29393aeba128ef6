package text

import (
	"context"
	"image"
	"log/slog"
	"strings"

	"github.com/gogpu/pixframe"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Draw renders s with its top-left corner at pos. pos uses the frame's
// coordinates, so in clipped mode it is relative to the selection.
func Draw(f *pixframe.Frame, pos pixframe.Vec, s string, c pixframe.Color, opts ...Option) {
	if f == nil || f.Buffer() == nil || s == "" {
		return
	}
	cfg := buildConfig(opts)
	m := cfg.face.Metrics()
	x, y := pos.Ints()

	d := font.Drawer{
		Dst:  f.View(),
		Src:  image.NewUniform(c),
		Face: cfg.face,
	}
	for i, line := range lines(s) {
		warnMissing(cfg.face, line)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + m.Ascent + fixed.Int26_6(i)*m.Height,
		}
		d.DrawString(line)
	}
}

// Measure returns the size of the box Draw would cover for s: the widest
// line's advance and the line height times the number of lines.
func Measure(s string, opts ...Option) pixframe.Vec {
	if s == "" {
		return pixframe.V(0, 0)
	}
	cfg := buildConfig(opts)
	ls := lines(s)

	var w fixed.Int26_6
	for _, line := range ls {
		w = max(w, font.MeasureString(cfg.face, line))
	}
	h := fixed.Int26_6(len(ls)) * cfg.face.Metrics().Height
	return pixframe.V(float64(w.Ceil()), float64(h.Ceil()))
}

// Callback returns a frame callback that draws s at pos on every update.
func Callback(pos pixframe.Vec, s string, c pixframe.Color, opts ...Option) pixframe.Callback {
	return func(f *pixframe.Frame, _ *pixframe.Param) {
		Draw(f, pos, s, c, opts...)
	}
}

// lines normalizes s to NFC and splits it at '\n'.
func lines(s string) []string {
	return strings.Split(norm.NFC.String(s), "\n")
}

func warnMissing(face font.Face, line string) {
	l := pixframe.Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, r := range line {
		if _, ok := face.GlyphAdvance(r); !ok {
			l.Debug("text: glyph missing from face", "rune", string(r))
		}
	}
}
