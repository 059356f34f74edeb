package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
)

// FontSet holds the fonts the navigation chrome renders with.
// Fields are nil when the theme has no usable font; text is then skipped.
type FontSet struct {
	Body  *ttf.Font
	Title *ttf.Font
	Icon  *ttf.Font
}

// Fonts is the set loaded by Init.
var Fonts FontSet

func initFonts(theme Theme) error {
	if theme.FontPath == "" {
		GetInternalLogger().Warn("No font configured; text will not be drawn")
		return nil
	}

	size := theme.FontSize
	if size <= 0 {
		size = constants.DefaultFontSize
	}

	body, err := ttf.OpenFont(theme.FontPath, size)
	if err != nil {
		return fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}

	title, err := ttf.OpenFont(theme.FontPath, size+constants.DefaultTitleFontSize-constants.DefaultFontSize)
	if err != nil {
		body.Close()
		return fmt.Errorf("open title font %s: %w", theme.FontPath, err)
	}
	title.SetStyle(ttf.STYLE_BOLD)

	Fonts = FontSet{Body: body, Title: title}

	if theme.IconFontPath != "" {
		icon, err := ttf.OpenFont(theme.IconFontPath, size)
		if err != nil {
			GetInternalLogger().Warn("Failed to open icon font", "path", theme.IconFontPath, "error", err)
		} else {
			Fonts.Icon = icon
		}
	}

	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.Body, Fonts.Title, Fonts.Icon} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}
