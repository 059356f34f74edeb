package fluidnav

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

// Option configures a NavigationStack.
type Option func(*stackOptions)

type stackOptions struct {
	animationDuration time.Duration
	swipeThreshold    float64
	swipeBack         bool
	scheduler         navigation.Scheduler
	logger            *slog.Logger
	clock             func() time.Time
	touchDevice       string
	debugOverlay      bool
}

// defaultStackOptions starts from the loaded configuration.
func defaultStackOptions() stackOptions {
	nav := settings.Navigation
	o := stackOptions{
		animationDuration: nav.AnimationDuration.Duration,
		swipeThreshold:    nav.SwipeThreshold,
		swipeBack:         nav.SwipeBack,
		logger:            internal.NavigationLogger(),
	}
	if settings.Touch.Enabled {
		o.touchDevice = settings.Touch.Device
	}
	return o
}

// WithSwipeBack turns the swipe-back gesture on or off.
func WithSwipeBack(enabled bool) Option {
	return func(o *stackOptions) {
		o.swipeBack = enabled
	}
}

// WithAnimationDuration sets how long transitions run and block navigation.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *stackOptions) {
		o.animationDuration = d
	}
}

// WithSwipeThreshold sets the drag distance that commits a swipe-back.
func WithSwipeThreshold(threshold float64) Option {
	return func(o *stackOptions) {
		o.swipeThreshold = threshold
	}
}

// WithScheduler runs animation lock releases on scheduler instead of the
// stack's own queue.
func WithScheduler(scheduler navigation.Scheduler) Option {
	return func(o *stackOptions) {
		o.scheduler = scheduler
	}
}

// WithLogger replaces the navigation logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *stackOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock drives animations from clock instead of time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *stackOptions) {
		o.clock = clock
	}
}

// WithTouchDevice reads raw touches from the evdev device at path while Run
// is active, in addition to SDL's own pointer events.
func WithTouchDevice(path string) Option {
	return func(o *stackOptions) {
		o.touchDevice = path
	}
}

// WithDebugOverlay draws the navigation depth in the bottom left corner.
func WithDebugOverlay(enabled bool) Option {
	return func(o *stackOptions) {
		o.debugOverlay = enabled
	}
}
