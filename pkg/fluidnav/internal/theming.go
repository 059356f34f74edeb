package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/config"
)

// Theme defines the colors and fonts the navigation chrome is drawn with.
type Theme struct {
	BackgroundColor    sdl.Color // Screen background behind every layer
	BarBackgroundColor sdl.Color // Navigation bar fill
	TextColor          sdl.Color // Titles and labels
	AccentColor        sdl.Color // Back chevron, navigation button labels
	SeparatorColor     sdl.Color // Bar hairline, row dividers
	ScrimColor         sdl.Color // Dimming behind a sheet
	FontPath           string    // Path to the primary UI font
	IconFontPath       string    // Optional icon font for glyphs in constants
	FontSize           int       // Body font size
}

var currentTheme = ThemeFromConfig(config.Default().Theme)

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// ThemeFromConfig converts the hex colors of a config file into a Theme.
func ThemeFromConfig(c config.Theme) Theme {
	return Theme{
		BackgroundColor:    HexToColor(c.Background),
		BarBackgroundColor: HexToColor(c.BarBackground),
		TextColor:          HexToColor(c.Text),
		AccentColor:        HexToColor(c.Accent),
		SeparatorColor:     HexToColor(c.Separator),
		ScrimColor:         HexToColor(c.Scrim),
		FontPath:           c.FontPath,
		IconFontPath:       c.IconFontPath,
		FontSize:           c.FontSize,
	}
}

// HexToColor converts an RGBA hex value to an SDL color.
func HexToColor(c config.HexColor) sdl.Color {
	r, g, b, a := c.RGBA()
	return sdl.Color{R: r, G: g, B: b, A: a}
}

// RGBToColor converts a 0xRRGGBB value to an opaque SDL color.
func RGBToColor(rgb uint32) sdl.Color {
	return HexToColor(config.HexColor(rgb<<8 | 0xFF))
}

// ToNRGBA converts an SDL color for use with image packages.
func ToNRGBA(c sdl.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
