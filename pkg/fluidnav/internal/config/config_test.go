package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(`
[navigation]
animation_duration = "450ms"
swipe_threshold = 80
swipe_back = false

[theme]
background = "#101010"
scrim = "#00000080"
`)
	require.NoError(t, err)

	assert.Equal(t, 450*time.Millisecond, cfg.Navigation.AnimationDuration.Duration)
	assert.Equal(t, 80.0, cfg.Navigation.SwipeThreshold)
	assert.False(t, cfg.Navigation.SwipeBack)
	assert.Equal(t, int32(44), cfg.Navigation.BarHeight)
	assert.Equal(t, HexColor(0x101010FF), cfg.Theme.Background)
	assert.Equal(t, HexColor(0x00000080), cfg.Theme.Scrim)
	assert.Equal(t, HexColor(0x000000FF), cfg.Theme.Text)
}

func TestDecodeRejectsBadValues(t *testing.T) {
	_, err := Decode(`[navigation]
animation_duration = "soon"`)
	assert.Error(t, err)

	_, err = Decode(`[theme]
text = "#12"`)
	assert.Error(t, err)

	_, err = Decode(`[navigation]
swipe_threshold = -1`)
	assert.Error(t, err)
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FLUIDNAV_LOG_LEVEL", "")
	t.Setenv("FLUIDNAV_LOCALE", "")
	t.Setenv("FLUIDNAV_EVDEV_TOUCH", "")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, unknown, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithoutFileAppliesEnv(t *testing.T) {
	t.Setenv("FLUIDNAV_LOG_LEVEL", "debug")
	t.Setenv("FLUIDNAV_LOCALE", "es")
	t.Setenv("FLUIDNAV_EVDEV_TOUCH", "/dev/input/event3")

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, unknown, err := Load(path)
		require.NoError(t, err, path)
		assert.Empty(t, unknown)
		assert.Equal(t, "es", cfg.Navigation.Locale, path)
		assert.Equal(t, "debug", cfg.LogLevel, path)
		assert.True(t, cfg.Touch.Enabled, path)
		assert.Equal(t, "/dev/input/event3", cfg.Touch.Device, path)
	}
}

func TestLoadReportsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluidnav.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[navigation]
bar_height = 52
bounce = true
`), 0o644))

	clearEnv(t)

	cfg, unknown, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(52), cfg.Navigation.BarHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"navigation.bounce"}, unknown)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FLUIDNAV_LOG_LEVEL", "info")
	t.Setenv("FLUIDNAV_LOCALE", "es")
	t.Setenv("FLUIDNAV_EVDEV_TOUCH", "/dev/input/event3")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "es", cfg.Navigation.Locale)
	assert.True(t, cfg.Touch.Enabled)
	assert.Equal(t, "/dev/input/event3", cfg.Touch.Device)
}

func TestHexColorRGBA(t *testing.T) {
	c, err := ParseHexColor("#007AFF")
	require.NoError(t, err)

	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint8{0x00, 0x7A, 0xFF, 0xFF}, []uint8{r, g, b, a})

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#007AFFFF", string(text))
}
