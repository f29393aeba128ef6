package pixframe

import "math"

// Vec represents a 2D coordinate pair.
// It is used both as a position and as a size (width, height).
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Trunc truncates both components toward zero, the way cell indices are
// derived from coordinates.
func (v Vec) Trunc() Vec {
	return Vec{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// Ints returns both components truncated toward zero as ints.
func (v Vec) Ints() (x, y int) {
	return int(v.X), int(v.Y)
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Selection is an axis-aligned rectangle in buffer coordinates.
type Selection struct {
	Pos  Vec
	Size Vec
}

// Sel is a convenience function to create a Selection.
func Sel(x, y, w, h float64) Selection {
	return Selection{Pos: V(x, y), Size: V(w, h)}
}

// ValidIn reports whether s lies entirely inside a buffer of the given size.
func (s Selection) ValidIn(size Vec) bool {
	return s.Pos.X >= 0 &&
		s.Pos.Y >= 0 &&
		s.Pos.X+s.Size.X <= size.X &&
		s.Pos.Y+s.Size.Y <= size.Y
}

// Contains reports whether p lies inside s using half-open edges.
func (s Selection) Contains(p Vec) bool {
	return p.X >= s.Pos.X && p.X < s.Pos.X+s.Size.X &&
		p.Y >= s.Pos.Y && p.Y < s.Pos.Y+s.Size.Y
}
