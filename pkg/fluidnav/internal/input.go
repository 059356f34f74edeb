package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
)

// PointerPhase is the stage of a mouse or touch contact.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a primary-button mouse or touch event in logical window coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X     int32
	Y     int32
}

// PointerFromEvent extracts a pointer event. Touches arrive as synthesised
// mouse events (SDL_HINT_TOUCH_MOUSE_EVENTS), so finger events are ignored here.
func PointerFromEvent(event sdl.Event) (PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return PointerEvent{}, false
		}
		phase := PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			phase = PointerDown
		}
		return PointerEvent{Phase: phase, X: e.X, Y: e.Y}, true
	case *sdl.MouseMotionEvent:
		return PointerEvent{Phase: PointerMove, X: e.X, Y: e.Y}, true
	}
	return PointerEvent{}, false
}

// ButtonFromEvent maps a key or controller press to a virtual button.
// Releases and key repeats are ignored.
func ButtonFromEvent(event sdl.Event) (constants.VirtualButton, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return constants.VirtualButtonUnassigned, false
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
			return constants.VirtualButtonB, true
		case sdl.K_RETURN, sdl.K_SPACE:
			return constants.VirtualButtonA, true
		case sdl.K_HOME:
			return constants.VirtualButtonL1, true
		case sdl.K_TAB:
			return constants.VirtualButtonSelect, true
		}
	case *sdl.ControllerButtonEvent:
		if e.State != sdl.PRESSED {
			return constants.VirtualButtonUnassigned, false
		}
		switch sdl.GameControllerButton(e.Button) {
		case sdl.CONTROLLER_BUTTON_B:
			return constants.VirtualButtonB, true
		case sdl.CONTROLLER_BUTTON_A:
			return constants.VirtualButtonA, true
		case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
			return constants.VirtualButtonL1, true
		case sdl.CONTROLLER_BUTTON_BACK:
			return constants.VirtualButtonSelect, true
		}
	}
	return constants.VirtualButtonUnassigned, false
}
