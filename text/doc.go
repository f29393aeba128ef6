// Package text draws bitmap-font labels into pixframe frames.
//
// Labels are rendered with a golang.org/x/image/font Face (by default
// basicfont.Face7x13) onto [pixframe.Frame.View], so every glyph pixel is
// clipped by the frame's selection like any other drawing.
//
// Strings are normalized to NFC before drawing. Bitmap faces carry
// precomposed Latin-1 glyphs but no combining marks, so "é" is drawn
// as "é" instead of "e" followed by a replacement glyph.
//
// # Example usage
//
//	f.Push(text.Callback(pixframe.V(2, 2), "score: 10", pixframe.White), nil)
//	f.Update()
//
// Multi-line strings advance by the face's line height at each '\n'.
package text
