// Package touch reads a Linux touchscreen through evdev so swipe-back works
// on handhelds where SDL does not receive touch events.
package touch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"
)

// Sample is one synchronised touch report with coordinates normalised to [0, 1].
type Sample struct {
	X    float64
	Y    float64
	Down bool
}

// Axis is the raw range the device reports for one coordinate.
type Axis struct {
	Min int32
	Max int32
}

func (a Axis) normalise(v int32) float64 {
	if a.Max <= a.Min {
		return 0
	}
	n := float64(v-a.Min) / float64(a.Max-a.Min)
	switch {
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}

// Decoder folds raw evdev events into Samples, one per SYN_REPORT.
type Decoder struct {
	xAxis   Axis
	yAxis   Axis
	x, y    int32
	down    bool
	changed bool
}

// NewDecoder returns a decoder for a device with the given axis ranges.
func NewDecoder(x, y Axis) *Decoder {
	return &Decoder{xAxis: x, yAxis: y}
}

// Feed consumes one event. It returns a sample when ev completes a report
// that changed something.
func (d *Decoder) Feed(ev *evdev.InputEvent) (Sample, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
			d.x = ev.Value
			d.changed = true
		case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
			d.y = ev.Value
			d.changed = true
		case evdev.ABS_MT_TRACKING_ID:
			// A tracking id of -1 lifts the contact.
			d.down = ev.Value >= 0
			d.changed = true
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.down = ev.Value != 0
			d.changed = true
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT && d.changed {
			d.changed = false
			return Sample{
				X:    d.xAxis.normalise(d.x),
				Y:    d.yAxis.normalise(d.y),
				Down: d.down,
			}, true
		}
	}
	return Sample{}, false
}

// device is the part of an evdev input device the reader needs.
type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader streams Samples from a touchscreen device node.
type Reader struct {
	dev     device
	decoder *Decoder
	logger  *slog.Logger
	close   sync.Once
}

// Open opens the device at path and reads its axis ranges.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("touch: %s: read axes: %w", path, err)
	}

	x, y := axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X), axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	if x.Max <= x.Min || y.Max <= y.Min {
		dev.Close()
		return nil, fmt.Errorf("touch: %s is not a touchscreen", path)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	name, _ := dev.Name()
	logger.Debug("Opened touch device", "path", path, "name", name, "x_max", x.Max, "y_max", y.Max)

	return &Reader{dev: dev, decoder: NewDecoder(x, y), logger: logger}, nil
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Axis{}
}

// Run delivers samples to emit until ctx is cancelled or the device fails.
// emit is called on Run's goroutine; hand samples to the UI thread yourself.
// The device is closed when Run returns.
func (r *Reader) Run(ctx context.Context, emit func(Sample)) error {
	defer r.Close()
	stop := context.AfterFunc(ctx, r.Close)
	defer stop()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("touch: read: %w", err)
		}
		if sample, ok := r.decoder.Feed(ev); ok {
			emit(sample)
		}
	}
}

// Close releases the device. Safe to call more than once.
func (r *Reader) Close() {
	r.close.Do(func() {
		if err := r.dev.Close(); err != nil {
			r.logger.Debug("Closing touch device failed", "error", err)
		}
	})
}
