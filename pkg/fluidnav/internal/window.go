package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
)

// Window wraps the SDL window and renderer the navigation stack draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   w,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// GetWindow returns the window created by Init, or nil before Init.
func GetWindow() *Window {
	return window
}

// Bounds is the logical drawing area of the window.
func (window *Window) Bounds() sdl.Rect {
	w, h := window.Renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		w, h = window.Window.GetSize()
	}
	return sdl.Rect{X: 0, Y: 0, W: w, H: h}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		frame := uint64(constants.DefaultFrameDelay.Milliseconds())
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
