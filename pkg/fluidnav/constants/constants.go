// Package constants defines shared constants, environment variables and
// default values used throughout fluidnav.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "FLUIDNAV_LOG_LEVEL"
	TouchDeviceEnvVar  = "FLUIDNAV_EVDEV_TOUCH"
	LocaleEnvVar       = "FLUIDNAV_LOCALE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an abstract input button, mapped from keyboard or controller.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing, gesture and sizing values.
const (
	DefaultAnimationDuration        = 300 * time.Millisecond // Animation lock hold time
	DefaultSwipeThreshold           = 100.0                  // Drag distance that commits a swipe-back
	DefaultBarHeight          int32 = 44                     // Navigation bar height
	DefaultBarPadding         int32 = 16                     // Horizontal bar padding
	DefaultSheetHeightPercent       = 90                     // Sheet surface height as % of the container
	DefaultFontSize                 = 22
	DefaultTitleFontSize            = 26
	DefaultFrameDelay               = 16 * time.Millisecond // ~60fps when VSync is unavailable
	DefaultTapSlop                  = 8.0                   // Movement below this still counts as a tap
)
