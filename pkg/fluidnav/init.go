// Package fluidnav provides an animated navigation stack for SDL applications:
// push, pop and pop-to-root between screens with configurable transitions,
// swipe-back from the left, and modal sheets and full-screen covers on top.
//
// The navigation state machine lives in the navigation subpackage and has no
// SDL dependency; this package draws it and feeds it input.
package fluidnav

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/config"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/platform/cannoli"
)

// Options configures fluidnav initialization.
type Options struct {
	WindowTitle   string                 // Window title displayed in windowed mode; overrides the config file
	WindowOptions internal.WindowOptions // SDL window flags; zero uses the config file
	ConfigPath    string                 // Optional TOML config file
	LogPath       string                 // Full path for log file including filename (creates parent directories)
	LogLevel      string                 // Overrides the config file log level
	Locale        string                 // Overrides the config file locale
	IsCannoli     bool                   // Use the Cannoli CFW theme instead of the configured one
	FontPath      string                 // Overrides the configured font
}

var settings = config.Default()

// Init loads configuration, sets up logging, theme and locale, and opens the
// SDL window. Must be called before any other fluidnav function that draws.
func Init(options Options) error {
	cfg, unknown, err := config.Load(options.ConfigPath)
	if err != nil {
		return NewInfrastructureError("load_config", err)
	}
	if options.LogLevel != "" {
		cfg.LogLevel = options.LogLevel
	}
	if options.Locale != "" {
		cfg.Navigation.Locale = options.Locale
	}
	if options.FontPath != "" {
		cfg.Theme.FontPath = options.FontPath
	}
	if options.WindowTitle != "" {
		cfg.Window.Title = options.WindowTitle
	}
	settings = cfg

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}

	internal.SetRawLogLevel(cfg.LogLevel)
	if constants.IsDevMode() || os.Getenv(constants.LogLevelEnvVar) == "debug" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLevel(cfg.LogLevel))
	}

	for _, key := range unknown {
		internal.GetInternalLogger().Warn("Unknown config key", "key", key, "path", options.ConfigPath)
	}

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(cfg.Theme.FontPath))
	} else {
		internal.SetTheme(internal.ThemeFromConfig(cfg.Theme))
	}

	if err := internal.SetLocale(cfg.Navigation.Locale); err != nil {
		internal.GetInternalLogger().Error("Failed to load locale; using English", "locale", cfg.Navigation.Locale, "error", err)
	}

	winOpts := options.WindowOptions
	if winOpts == (internal.WindowOptions{}) {
		winOpts = internal.WindowOptionsFromConfig(cfg.Window)
	}

	if err := internal.Init(cfg.Window.Title, winOpts); err != nil {
		return NewInfrastructureError("init_sdl", err)
	}

	internal.GetInternalLogger().Debug("fluidnav initialized",
		"locale", cfg.Navigation.Locale,
		"animation_duration", cfg.Navigation.AnimationDuration.String(),
		"swipe_back", cfg.Navigation.SwipeBack)
	return nil
}

// Close releases all SDL resources and shuts down fluidnav.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
