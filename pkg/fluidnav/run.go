package fluidnav

import (
	"context"
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/touch"
)

// Run drives the stack in the window opened by Init until the window is
// closed or ctx is done. It must be called from the thread that called Init.
func (s *NavigationStack) Run(ctx context.Context) error {
	window := internal.GetWindow()
	if window == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.opts.touchDevice != "" {
		s.startTouch(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				s.logger.Debug("Quit requested")
				return nil
			}
			s.HandleEvent(event)
		}

		window.Renderer.SetDrawColor(0, 0, 0, 255)
		window.Renderer.Clear()
		s.Render(renderContext(ctx, window))
		window.Present()
	}
}

// startTouch reads the evdev device on its own goroutine. Samples are handed
// to the UI thread through the stack's queue.
func (s *NavigationStack) startTouch(ctx context.Context) {
	reader, err := touch.Open(s.opts.touchDevice, s.logger)
	if err != nil {
		s.logger.Warn("Touch device unavailable", "device", s.opts.touchDevice, "error", err)
		return
	}

	go func() {
		err := reader.Run(ctx, func(sample touch.Sample) {
			s.queue.Post(func() {
				s.handleTouch(sample.X, sample.Y, sample.Down)
			})
		})
		if err != nil && ctx.Err() == nil {
			s.logger.Warn("Touch reader stopped", "device", s.opts.touchDevice, "error", err)
		}
	}()
}
