package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTarget struct {
	changed []Vector
	ended   []Vector
}

func (r *recordingTarget) DragChanged(t Vector) { r.changed = append(r.changed, t) }
func (r *recordingTarget) DragEnded(t Vector) { r.ended = append(r.ended, t) }

func TestDragRecognizerTap(t *testing.T) {
	r := NewDragRecognizer(8)
	target := &recordingTarget{}

	r.Down(Vector{X: 10, Y: 10})
	r.Move(Vector{X: 13, Y: 12}, target)
	assert.True(t, r.Up(Vector{X: 13, Y: 12}, target))
	assert.Empty(t, target.changed)
	assert.Empty(t, target.ended)
}

func TestDragRecognizerDrag(t *testing.T) {
	r := NewDragRecognizer(8)
	target := &recordingTarget{}

	r.Down(Vector{X: 20, Y: 100})
	r.Move(Vector{X: 60, Y: 104}, target)
	r.Move(Vector{X: 170, Y: 110}, target)
	assert.True(t, r.Dragging())
	assert.False(t, r.Up(Vector{X: 170, Y: 110}, target))

	assert.Equal(t, []Vector{{X: 40, Y: 4}, {X: 150, Y: 10}}, target.changed)
	assert.Equal(t, []Vector{{X: 150, Y: 10}}, target.ended)
	assert.False(t, r.Dragging())
}

func TestDragRecognizerIgnoresMoveWithoutDown(t *testing.T) {
	r := NewDragRecognizer(8)
	target := &recordingTarget{}

	r.Move(Vector{X: 300}, target)
	assert.False(t, r.Up(Vector{X: 300}, target))
	assert.Empty(t, target.changed)
}

func TestDragRecognizerDrivesContainer(t *testing.T) {
	c, sched := newTestContainer(t)
	c.Push(&testScreen{name: "a"}, Slide)
	sched.fire()
	c.Push(&testScreen{name: "b"}, Slide)
	sched.fire()

	r := NewDragRecognizer(8)
	r.Down(Vector{X: 5, Y: 200})
	r.Move(Vector{X: 155, Y: 200}, c)
	assert.Equal(t, 150.0, c.Drag().Offset.X)
	r.Up(Vector{X: 155, Y: 200}, c)

	assert.Equal(t, 1, c.Depth())
}
