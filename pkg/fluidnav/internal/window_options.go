package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/config"
)

type WindowOptions struct {
	Width      int32 // Initial width; 0 uses the display mode
	Height     int32 // Initial height; 0 uses the display mode
	Borderless bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool  // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden     bool  // Start hidden (omits SDL_WINDOW_SHOWN)
}

// WindowOptionsFromConfig maps the [window] table of a config file.
func WindowOptionsFromConfig(c config.Window) WindowOptions {
	return WindowOptions{
		Width:      c.Width,
		Height:     c.Height,
		Borderless: c.Borderless,
		Resizable:  !c.Fullscreen,
		Fullscreen: c.Fullscreen,
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
