package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var controllers []*sdl.GameController

// Init brings up SDL, the window and the fonts. Errors name the failing step.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	// Let a finger on the touchscreen also produce mouse events, so one
	// drag path serves both.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "1")

	openControllers()

	w, err := initWindow(title, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(GetTheme()); err != nil {
		return err
	}

	return nil
}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			GetInternalLogger().Debug("Opened game controller", "name", c.Name())
			controllers = append(controllers, c)
		}
	}
}

func SDLCleanup() {
	ClearTextureCaches()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
