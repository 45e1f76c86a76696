package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/dusk/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25*time.Minute, cfg.Pomodoro.Focus)
	assert.Equal(t, 3, cfg.Pomodoro.LongBreakEvery)
	assert.Equal(t, 20*time.Second, cfg.Loop.PollInterval)
	assert.Equal(t, "xsct", cfg.Screen.Command)
	assert.Equal(t, "alarm-clock", cfg.Notifications.Icon)
	assert.False(t, cfg.History.Enabled)
	assert.Len(t, cfg.Ramp.Steps, 3)
}

func TestDefaultConfig_MatchesDomain(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, domain.DefaultPomodoroConfig(), cfg.ToPomodoroDomainConfig())
	assert.Equal(t, domain.DefaultRampConfig(), cfg.ToRampDomainConfig())
	assert.Equal(t, domain.DefaultFlashConfig(), cfg.ToFlashDomainConfig())
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	want := DefaultConfig()
	assert.Equal(t, want.Pomodoro, cfg.Pomodoro)
	assert.Equal(t, want.Ramp, cfg.Ramp)
	assert.Equal(t, want.Flash, cfg.Flash)
	assert.Equal(t, want.Loop, cfg.Loop)
	assert.Equal(t, want.Notifications, cfg.Notifications)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".dusk"), cfg.History.DataDir)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[pomodoro]
focus = "50m"
short_break = "10m"
long_break = "30m"
long_break_every = 2

[ramp]
reminder_before = "30m"
final_kelvin = 1200
baseline_kelvin = 6500

[[ramp.steps]]
minutes_before = 90
kelvin = 3500

[[ramp.steps]]
minutes_before = 45
kelvin = 2500

[plan]
allow_overlap = true

[history]
enabled = true
data_dir = "/var/tmp/dusk"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50*time.Minute, cfg.Pomodoro.Focus)
	assert.Equal(t, 2, cfg.Pomodoro.LongBreakEvery)
	assert.Equal(t, []RampStep{{90, 3500}, {45, 2500}}, cfg.Ramp.Steps)
	assert.Equal(t, 30*time.Minute, cfg.Ramp.ReminderBefore)
	assert.True(t, cfg.Plan.AllowOverlap)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/var/tmp/dusk/dusk.db", GetDBPath(cfg))

	// Sections missing from the file fall back to defaults.
	assert.Equal(t, 20*time.Second, cfg.Loop.PollInterval)
	assert.Equal(t, "xsct", cfg.Screen.Command)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DUSK_LOOP_POLL_INTERVAL", "5s")
	t.Setenv("DUSK_NOTIFICATIONS_BACKEND", "beeep")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Loop.PollInterval)
	assert.Equal(t, BackendBeeep, cfg.Notifications.Backend)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pomodoro\nfocus = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero focus", func(c *Config) { c.Pomodoro.Focus = 0 }},
		{"long break cadence", func(c *Config) { c.Pomodoro.LongBreakEvery = 0 }},
		{"ascending ramp", func(c *Config) {
			c.Ramp.Steps = []RampStep{{MinutesBefore: 60, Kelvin: 3000}, {MinutesBefore: 120, Kelvin: 2000}}
		}},
		{"zero poll", func(c *Config) { c.Loop.PollInterval = 0 }},
		{"slow poll", func(c *Config) { c.Loop.PollInterval = 2 * time.Minute }},
		{"empty command", func(c *Config) { c.Screen.Command = " " }},
		{"unknown backend", func(c *Config) { c.Notifications.Backend = "smoke-signals" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"flash kelvin", func(c *Config) { c.Flash.Kelvin = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", filepath.Join(home, ".dusk")},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/srv/dusk", "/srv/dusk"},
		{"relative", "relative"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "expandHome(%q)", tt.in)
	}
}
