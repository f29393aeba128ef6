package pixframe

// SetPixel writes c at p. Out-of-range writes are silently dropped:
//   - p.X or p.Y negative
//   - p outside the buffer
//   - in clipped mode, p outside the selection size or the selection not
//     inside the buffer
//
// In clipped mode p is relative to the selection origin. Coordinates are
// truncated toward zero when mapped to a cell.
func (f *Frame) SetPixel(p Vec, c Color) {
	if f == nil || f.buffer == nil {
		return
	}
	if !f.accept(p) {
		f.stats.Rejected++
		return
	}

	if f.sub {
		p = p.Add(f.selection.Pos)
	}

	b := f.buffer
	x, y := p.Ints()
	w := b.Width()
	if !f.inclusive && (x >= w || y >= b.Height()) {
		f.stats.Rejected++
		return
	}
	i := y*w + x
	if i >= len(b.data) {
		f.stats.Rejected++
		return
	}
	b.data[i] = c
	f.stats.Written++
}

// accept applies the clipping rules before translation.
func (f *Frame) accept(p Vec) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	size := f.buffer.size
	if f.beyond(p, size) {
		return false
	}
	if !f.sub {
		return true
	}
	return !f.beyond(p, f.selection.Size) && f.selection.ValidIn(size)
}

// beyond reports whether p is past the far edge of size.
func (f *Frame) beyond(p, size Vec) bool {
	if f.inclusive {
		return p.X > size.X || p.Y > size.Y
	}
	return p.X >= size.X || p.Y >= size.Y
}

// FillRect sets every integer offset (x, y) with 0 <= x < size.X and
// 0 <= y < size.Y relative to pos. pos is truncated toward zero first.
// Each pixel is clipped individually, so partly visible rectangles are drawn
// partly. A non-finite size draws nothing.
func (f *Frame) FillRect(pos, size Vec, c Color) {
	if f == nil || f.buffer == nil || !size.IsFinite() {
		return
	}
	px, py := pos.Ints()
	for x := 0; float64(x) < size.X; x++ {
		for y := 0; float64(y) < size.Y; y++ {
			f.SetPixel(V(float64(px+x), float64(py+y)), c)
		}
	}
}

// FillSelection fills a rectangle at the origin the size of the selection.
// The selection size is used in full mode too.
func (f *Frame) FillSelection(c Color) {
	if f == nil {
		return
	}
	f.FillRect(V(0, 0), f.selection.Size, c)
}

// Clear fills the selection area with black.
func (f *Frame) Clear() {
	f.FillSelection(Black)
}
