package pixframe

import "image/color"

// Color is a packed RGB value: red in the low byte, green in the next,
// blue in the third. The top byte is unused; there is no alpha.
type Color uint32

// RGB packs red, green and blue components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r) | Color(g)<<8 | Color(b)<<16
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 16) }

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// NRGBA converts c to a standard non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
}

// FromColor converts a standard color.Color to a packed Color.
// Alpha is discarded after un-premultiplying.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// ColorModel converts arbitrary colors into packed Colors.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
