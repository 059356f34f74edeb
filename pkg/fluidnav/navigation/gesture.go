package navigation

import "math"

// DragTarget receives drag updates. Container satisfies it.
type DragTarget interface {
	DragChanged(translation Vector)
	DragEnded(translation Vector)
}

// DragRecognizer turns raw pointer down/move/up into drag callbacks,
// telling taps apart from drags by a small movement slop.
type DragRecognizer struct {
	slop     float64
	start    Vector
	pressed  bool
	dragging bool
}

// NewDragRecognizer returns a recognizer that starts a drag once the pointer
// moved more than slop from where it went down.
func NewDragRecognizer(slop float64) *DragRecognizer {
	return &DragRecognizer{slop: slop}
}

// Down starts tracking a pointer at p.
func (r *DragRecognizer) Down(p Vector) {
	r.start = p
	r.pressed = true
	r.dragging = false
}

// Move reports the translation to target once the slop is exceeded.
func (r *DragRecognizer) Move(p Vector, target DragTarget) {
	if !r.pressed {
		return
	}
	t := Vector{X: p.X - r.start.X, Y: p.Y - r.start.Y}
	if !r.dragging && math.Hypot(t.X, t.Y) <= r.slop {
		return
	}
	r.dragging = true
	target.DragChanged(t)
}

// Up finishes the gesture. It returns true when the pointer never left the
// slop, which callers treat as a tap.
func (r *DragRecognizer) Up(p Vector, target DragTarget) bool {
	if !r.pressed {
		return false
	}
	r.pressed = false
	if !r.dragging {
		return true
	}
	r.dragging = false
	target.DragEnded(Vector{X: p.X - r.start.X, Y: p.Y - r.start.Y})
	return false
}

// Cancel drops the gesture without reporting an end.
func (r *DragRecognizer) Cancel() {
	r.pressed = false
	r.dragging = false
}

// Dragging reports whether a drag is in progress.
func (r *DragRecognizer) Dragging() bool {
	return r.dragging
}
