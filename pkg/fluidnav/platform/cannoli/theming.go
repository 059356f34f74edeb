// Package cannoli provides a navigation theme matching the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
)

// InitCannoliTheme creates a theme with Cannoli's teal-on-black palette and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:    internal.RGBToColor(0x000000),
		BarBackgroundColor: internal.RGBToColor(0x101818),
		TextColor:          internal.RGBToColor(0xFFFFFF),
		AccentColor:        internal.RGBToColor(0x008080),
		SeparatorColor:     internal.RGBToColor(0x204040),
		ScrimColor:         internal.HexToColor(0x000000A0),
		FontPath:           fontPath,
		FontSize:           24,
	}
}
