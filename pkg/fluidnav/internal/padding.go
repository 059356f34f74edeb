package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// HorizontalPadding pads only the left and right sides.
func HorizontalPadding(value int32) Padding {
	return Padding{Right: value, Left: value}
}

// Inset shrinks rect by the padding, never below zero size.
func (p Padding) Inset(rect sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: rect.X + p.Left,
		Y: rect.Y + p.Top,
		W: rect.W - p.Left - p.Right,
		H: rect.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
