// Package animation holds the interpolation primitives the navigation
// presentation layer uses to move screens in and out.
//
// Nothing here knows about navigation state. An Effect describes what a screen
// looks like when an animation is fully applied, a Curve shapes progress over
// time, and an Animator tracks which screens are currently moving.
package animation

import "math"

// Edge is the side of the container a screen moves to or from.
type Edge int

const (
	EdgeLeading Edge = iota
	EdgeTrailing
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return ""
	}
}

// Size is the extent of the area a screen is drawn into.
type Size struct {
	W float64
	H float64
}

// Frame is the visual state of one screen for a single rendered frame.
type Frame struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
	Opacity float64
}

// Identity returns a frame with no transformation applied.
func Identity() Frame {
	return Frame{Scale: 1, Opacity: 1}
}

// Effect transforms a frame. amount is how much of the effect is applied:
// 0 leaves the frame untouched, 1 applies it fully.
type Effect func(f Frame, amount float64, size Size) Frame

// None is an effect that never changes the frame.
func None() Effect {
	return func(f Frame, _ float64, _ Size) Frame { return f }
}

// Move slides the frame one full container length towards edge.
func Move(edge Edge) Effect {
	return func(f Frame, amount float64, size Size) Frame {
		switch edge {
		case EdgeLeading:
			f.OffsetX -= size.W * amount
		case EdgeTrailing:
			f.OffsetX += size.W * amount
		case EdgeTop:
			f.OffsetY -= size.H * amount
		case EdgeBottom:
			f.OffsetY += size.H * amount
		}
		return f
	}
}

// Offset shifts the frame by a fraction of the container size.
// Offset(-0.3, 0) moves it left by 30% of the width.
func Offset(fx, fy float64) Effect {
	return func(f Frame, amount float64, size Size) Frame {
		f.OffsetX += size.W * fx * amount
		f.OffsetY += size.H * fy * amount
		return f
	}
}

// Opacity fades the frame out.
func Opacity() Effect {
	return func(f Frame, amount float64, _ Size) Frame {
		f.Opacity *= 1 - amount
		return f
	}
}

// Scale grows or shrinks the frame around its centre towards factor.
func Scale(factor float64) Effect {
	return func(f Frame, amount float64, _ Size) Frame {
		f.Scale *= 1 + (factor-1)*amount
		return f
	}
}

// Combined applies every effect in order.
func Combined(effects ...Effect) Effect {
	return func(f Frame, amount float64, size Size) Frame {
		for _, e := range effects {
			if e != nil {
				f = e(f, amount, size)
			}
		}
		return f
	}
}

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseInOut is a quadratic ease that starts and ends slowly.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
