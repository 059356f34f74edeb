// Package config loads fluidnav settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
)

// Config is the root of a fluidnav TOML file.
//
//	[navigation]
//	animation_duration = "300ms"
//	swipe_threshold = 100
//	swipe_back = true
//	bar_height = 44
//	locale = "en"
//
//	[theme]
//	background = "#FFFFFF"
//	text = "#000000"
//	font_path = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
type Config struct {
	Navigation Navigation `toml:"navigation"`
	Theme      Theme      `toml:"theme"`
	Window     Window     `toml:"window"`
	Touch      Touch      `toml:"touch"`
	LogLevel   string     `toml:"log_level"`
	LogPath    string     `toml:"log_path"`
}

// Navigation holds stack behaviour settings.
type Navigation struct {
	AnimationDuration Duration `toml:"animation_duration"`
	SwipeThreshold    float64  `toml:"swipe_threshold"`
	SwipeBack         bool     `toml:"swipe_back"`
	BarHeight         int32    `toml:"bar_height"`
	Locale            string   `toml:"locale"`
}

// Theme holds colors as hex strings and the font to draw text with.
type Theme struct {
	Background    HexColor `toml:"background"`
	BarBackground HexColor `toml:"bar_background"`
	Text          HexColor `toml:"text"`
	Accent        HexColor `toml:"accent"`
	Separator     HexColor `toml:"separator"`
	Scrim         HexColor `toml:"scrim"`
	FontPath      string   `toml:"font_path"`
	IconFontPath  string   `toml:"icon_font_path"`
	FontSize      int      `toml:"font_size"`
}

// Window holds the initial window geometry.
type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Borderless bool   `toml:"borderless"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Touch configures the raw evdev touchscreen reader.
type Touch struct {
	Device  string `toml:"device"`
	Enabled bool   `toml:"enabled"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// HexColor is an RGBA color written as "#RRGGBB" or "#RRGGBBAA".
type HexColor uint32

func (c *HexColor) UnmarshalText(text []byte) error {
	v, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%08X", uint32(c))), nil
}

// RGBA splits the color into its channels.
func (c HexColor) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ParseHexColor parses "#RRGGBB" (opaque) or "#RRGGBBAA". The leading # is optional.
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		s += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor(v), nil
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Navigation: Navigation{
			AnimationDuration: Duration{constants.DefaultAnimationDuration},
			SwipeThreshold:    constants.DefaultSwipeThreshold,
			SwipeBack:         true,
			BarHeight:         constants.DefaultBarHeight,
			Locale:            "en",
		},
		Theme: Theme{
			Background:    0xFFFFFFFF,
			BarBackground: 0xF7F7F7FF,
			Text:          0x000000FF,
			Accent:        0x007AFFFF,
			Separator:     0xC6C6C8FF,
			Scrim:         0x00000066,
			FontSize:      constants.DefaultFontSize,
		},
		Window: Window{
			Title:  "fluidnav",
			Width:  1024,
			Height: 768,
		},
		LogLevel: "error",
	}
}

// Load reads path over the defaults, then applies the environment.
// An empty path or a missing file is not an error.
// The second result lists keys present in the file that fluidnav does not know.
func Load(path string) (Config, []string, error) {
	cfg := Default()
	var unknown []string

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			cfg = Default()
		case err != nil:
			return Default(), nil, fmt.Errorf("config: %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				unknown = append(unknown, key.String())
			}
		}
	}

	cfg.ApplyEnv()
	return cfg, unknown, cfg.Validate()
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides file values with the fluidnav environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Navigation.Locale = v
	}
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		c.Touch.Device = v
		c.Touch.Enabled = true
	}
}

// Validate rejects values the navigation stack cannot run with.
func (c Config) Validate() error {
	if c.Navigation.AnimationDuration.Duration < 0 {
		return fmt.Errorf("config: navigation.animation_duration must not be negative")
	}
	if c.Navigation.SwipeThreshold < 0 {
		return fmt.Errorf("config: navigation.swipe_threshold must not be negative")
	}
	if c.Navigation.BarHeight < 0 {
		return fmt.Errorf("config: navigation.bar_height must not be negative")
	}
	return nil
}
