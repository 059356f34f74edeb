package animation

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Direction says whether an animation brings a screen in or takes it away.
type Direction int

const (
	Insertion Direction = iota
	Removal
)

// Animation is one in-flight effect on one screen.
type Animation struct {
	Effect    Effect
	Direction Direction
	Curve     Curve
	Start     time.Time
	Duration  time.Duration
}

// Progress returns linear progress at now and whether the animation is over.
func (a Animation) Progress(now time.Time) (float64, bool) {
	if a.Duration <= 0 {
		return 1, true
	}
	t := float64(now.Sub(a.Start)) / float64(a.Duration)
	if t >= 1 {
		return 1, true
	}
	return clamp01(t), false
}

// Apply returns the frame for this animation at now.
// Insertions run the effect from fully applied to none, removals the reverse.
func (a Animation) Apply(f Frame, now time.Time, size Size) Frame {
	t, _ := a.Progress(now)
	curve := a.Curve
	if curve == nil {
		curve = EaseInOut
	}
	eased := curve(t)

	amount := eased
	if a.Direction == Insertion {
		amount = 1 - eased
	}
	if a.Effect == nil {
		return f
	}
	return a.Effect(f, amount, size)
}

// Animator tracks in-flight animations keyed by whatever identifies a screen.
type Animator[K comparable] struct {
	now      func() time.Time
	duration time.Duration
	curve    Curve
	active   map[K]Animation
}

// NewAnimator returns an animator whose animations last duration.
// A nil clock uses time.Now.
func NewAnimator[K comparable](duration time.Duration, clock func() time.Time) *Animator[K] {
	if clock == nil {
		clock = time.Now
	}
	return &Animator[K]{
		now:      clock,
		duration: duration,
		curve:    EaseInOut,
		active:   make(map[K]Animation),
	}
}

// Start begins animating key, replacing any animation already running for it.
func (a *Animator[K]) Start(key K, effect Effect, dir Direction) {
	a.active[key] = Animation{
		Effect:    effect,
		Direction: dir,
		Curve:     a.curve,
		Start:     a.now(),
		Duration:  a.duration,
	}
}

// Frame applies the running animation for key to f.
// The second result is false when key has no animation.
func (a *Animator[K]) Frame(key K, f Frame, size Size) (Frame, bool) {
	anim, ok := a.active[key]
	if !ok {
		return f, false
	}
	return anim.Apply(f, a.now(), size), true
}

// Direction reports the direction of the running animation for key.
func (a *Animator[K]) Direction(key K) (Direction, bool) {
	anim, ok := a.active[key]
	return anim.Direction, ok
}

// Prune drops finished animations and returns the keys of removals that ended,
// so the caller can release those screens.
func (a *Animator[K]) Prune() []K {
	now := a.now()
	var removed []K
	for key, anim := range a.active {
		if _, done := anim.Progress(now); done {
			if anim.Direction == Removal {
				removed = append(removed, key)
			}
			delete(a.active, key)
		}
	}
	return removed
}

// Active reports whether anything is still animating.
func (a *Animator[K]) Active() bool {
	return len(a.active) > 0
}

// SpringBack eases a displaced value back to zero with a damped spring.
type SpringBack struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	active   bool
	settleAt float64
}

// NewSpringBack returns a spring stepped fps times per second.
func NewSpringBack(fps int) *SpringBack {
	return &SpringBack{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.8),
		settleAt: 0.5,
	}
}

// Start launches the spring from displacement from.
func (s *SpringBack) Start(from float64) {
	s.pos = from
	s.vel = 0
	s.active = from != 0
}

// Step advances the spring one frame and returns the new displacement.
func (s *SpringBack) Step() float64 {
	if !s.active {
		return 0
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 0)
	if abs(s.pos) < s.settleAt && abs(s.vel) < s.settleAt {
		s.pos, s.vel, s.active = 0, 0, false
	}
	return s.pos
}

// Value is the current displacement.
func (s *SpringBack) Value() float64 {
	return s.pos
}

// Active reports whether the spring is still moving.
func (s *SpringBack) Active() bool {
	return s.active
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
