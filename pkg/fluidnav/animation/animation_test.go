package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveEdges(t *testing.T) {
	size := Size{W: 400, H: 800}

	tests := []struct {
		edge  Edge
		wantX float64
		wantY float64
	}{
		{EdgeLeading, -400, 0},
		{EdgeTrailing, 400, 0},
		{EdgeTop, 0, -800},
		{EdgeBottom, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			f := Move(tt.edge)(Identity(), 1, size)
			assert.Equal(t, tt.wantX, f.OffsetX)
			assert.Equal(t, tt.wantY, f.OffsetY)
			assert.Equal(t, 1.0, f.Opacity)
		})
	}
}

func TestCombinedScaleAndOpacity(t *testing.T) {
	effect := Combined(Scale(0.8), Opacity())

	half := effect(Identity(), 0.5, Size{W: 100, H: 100})
	assert.InDelta(t, 0.9, half.Scale, 1e-9)
	assert.InDelta(t, 0.5, half.Opacity, 1e-9)

	none := effect(Identity(), 0, Size{W: 100, H: 100})
	assert.Equal(t, Identity(), none)
}

func TestOffsetIsFractionOfSize(t *testing.T) {
	size := Size{W: 400, H: 800}

	full := Offset(-0.3, 0.5)(Identity(), 1, size)
	assert.InDelta(t, -120, full.OffsetX, 1e-9)
	assert.InDelta(t, 400, full.OffsetY, 1e-9)

	half := Combined(Offset(-0.3, 0), Opacity())(Identity(), 0.5, size)
	assert.InDelta(t, -60, half.OffsetX, 1e-9)
	assert.InDelta(t, 0.5, half.Opacity, 1e-9)
}

func TestEaseInOutEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
	assert.Equal(t, 1.0, EaseInOut(2))
	assert.Less(t, EaseInOut(0.25), 0.25)
}

func TestAnimatorInsertionAndRemoval(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	a := NewAnimator[string](300*time.Millisecond, clock)
	size := Size{W: 200, H: 100}

	a.Start("in", Move(EdgeTrailing), Insertion)
	a.Start("out", Move(EdgeTrailing), Removal)

	in, ok := a.Frame("in", Identity(), size)
	require.True(t, ok)
	assert.Equal(t, 200.0, in.OffsetX)

	out, ok := a.Frame("out", Identity(), size)
	require.True(t, ok)
	assert.Equal(t, 0.0, out.OffsetX)

	now = now.Add(300 * time.Millisecond)
	in, _ = a.Frame("in", Identity(), size)
	assert.Equal(t, 0.0, in.OffsetX)

	removed := a.Prune()
	assert.Equal(t, []string{"out"}, removed)
	assert.False(t, a.Active())

	_, ok = a.Frame("in", Identity(), size)
	assert.False(t, ok)
}

func TestSpringBackSettles(t *testing.T) {
	s := NewSpringBack(60)
	s.Start(80)
	require.True(t, s.Active())

	for i := 0; i < 600 && s.Active(); i++ {
		s.Step()
	}

	assert.False(t, s.Active())
	assert.Equal(t, 0.0, s.Value())
}
