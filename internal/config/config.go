// Package config provides configuration management for Dusk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/xvierd/dusk/internal/domain"
)

// defaultDataDir is expanded against the home directory on load.
const defaultDataDir = "~/.dusk"

// Notification backends.
const (
	BackendAuto  = "auto"
	BackendDBus  = "dbus"
	BackendBeeep = "beeep"
)

// Config holds all configuration for the Dusk application.
type Config struct {
	Pomodoro      PomodoroConfig     `mapstructure:"pomodoro"`
	Ramp          RampConfig         `mapstructure:"ramp"`
	Flash         FlashConfig        `mapstructure:"flash"`
	Loop          LoopConfig         `mapstructure:"loop"`
	Screen        ScreenConfig       `mapstructure:"screen"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Plan          PlanConfig         `mapstructure:"plan"`
	History       HistoryConfig      `mapstructure:"history"`
	Log           LogConfig          `mapstructure:"log"`
}

// PomodoroConfig holds the in-task pomodoro cadence.
type PomodoroConfig struct {
	Focus          time.Duration `mapstructure:"focus"`
	ShortBreak     time.Duration `mapstructure:"short_break"`
	LongBreak      time.Duration `mapstructure:"long_break"`
	LongBreakEvery int           `mapstructure:"long_break_every"`
}

// RampStep is one screen warming step before bedtime.
type RampStep struct {
	MinutesBefore int `mapstructure:"minutes_before"`
	Kelvin        int `mapstructure:"kelvin"`
}

// RampConfig holds the bedtime ramp settings.
type RampConfig struct {
	Steps          []RampStep    `mapstructure:"steps"`
	ReminderBefore time.Duration `mapstructure:"reminder_before"`
	FinalKelvin    int           `mapstructure:"final_kelvin"`
	BaselineKelvin int           `mapstructure:"baseline_kelvin"`
}

// FlashConfig holds the end-of-task screen flash settings.
type FlashConfig struct {
	Kelvin int           `mapstructure:"kelvin"`
	Cycles int           `mapstructure:"cycles"`
	Phase  time.Duration `mapstructure:"phase"`
}

// LoopConfig holds the polling settings.
type LoopConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// ScreenConfig holds the screen tint command settings.
type ScreenConfig struct {
	Command            string `mapstructure:"command"`
	RestoreOnInterrupt bool   `mapstructure:"restore_on_interrupt"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"`
	Icon    string `mapstructure:"icon"`
}

// PlanConfig holds plan validation settings.
type PlanConfig struct {
	AllowOverlap bool `mapstructure:"allow_overlap"`
}

// HistoryConfig holds run journal settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	pomodoro := domain.DefaultPomodoroConfig()
	ramp := domain.DefaultRampConfig()
	flash := domain.DefaultFlashConfig()

	steps := make([]RampStep, len(ramp.Steps))
	for i, s := range ramp.Steps {
		steps[i] = RampStep{MinutesBefore: s.MinutesBefore, Kelvin: s.Kelvin}
	}

	return &Config{
		Pomodoro: PomodoroConfig{
			Focus:          pomodoro.FocusDuration,
			ShortBreak:     pomodoro.ShortBreakDuration,
			LongBreak:      pomodoro.LongBreakDuration,
			LongBreakEvery: pomodoro.LongBreakEvery,
		},
		Ramp: RampConfig{
			Steps:          steps,
			ReminderBefore: ramp.ReminderBefore,
			FinalKelvin:    ramp.FinalKelvin,
			BaselineKelvin: ramp.BaselineKelvin,
		},
		Flash: FlashConfig{
			Kelvin: flash.Kelvin,
			Cycles: flash.Cycles,
			Phase:  flash.Phase,
		},
		Loop: LoopConfig{
			PollInterval: 20 * time.Second,
		},
		Screen: ScreenConfig{
			Command:            "xsct",
			RestoreOnInterrupt: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Backend: BackendAuto,
			Icon:    "alarm-clock",
		},
		History: HistoryConfig{
			Enabled: false,
			DataDir: defaultDataDir,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path, or at the default location when
// path is empty. A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.History.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.History.DataDir = dataDir

	return &cfg, nil
}

// Save writes cfg to the TOML file at path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	steps := make([]map[string]any, len(cfg.Ramp.Steps))
	for i, s := range cfg.Ramp.Steps {
		steps[i] = map[string]any{"minutes_before": s.MinutesBefore, "kelvin": s.Kelvin}
	}

	v.Set("pomodoro.focus", cfg.Pomodoro.Focus.String())
	v.Set("pomodoro.short_break", cfg.Pomodoro.ShortBreak.String())
	v.Set("pomodoro.long_break", cfg.Pomodoro.LongBreak.String())
	v.Set("pomodoro.long_break_every", cfg.Pomodoro.LongBreakEvery)
	v.Set("ramp.steps", steps)
	v.Set("ramp.reminder_before", cfg.Ramp.ReminderBefore.String())
	v.Set("ramp.final_kelvin", cfg.Ramp.FinalKelvin)
	v.Set("ramp.baseline_kelvin", cfg.Ramp.BaselineKelvin)
	v.Set("flash.kelvin", cfg.Flash.Kelvin)
	v.Set("flash.cycles", cfg.Flash.Cycles)
	v.Set("flash.phase", cfg.Flash.Phase.String())
	v.Set("loop.poll_interval", cfg.Loop.PollInterval.String())
	v.Set("screen.command", cfg.Screen.Command)
	v.Set("screen.restore_on_interrupt", cfg.Screen.RestoreOnInterrupt)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.backend", cfg.Notifications.Backend)
	v.Set("notifications.icon", cfg.Notifications.Icon)
	v.Set("plan.allow_overlap", cfg.Plan.AllowOverlap)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.data_dir", cfg.History.DataDir)
	v.Set("log.level", cfg.Log.Level)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".dusk", "config.toml"), nil
}

// GetDBPath returns the path to the journal database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.History.DataDir, "dusk.db")
}

// Validate rejects settings the scheduler cannot run with.
func (c *Config) Validate() error {
	if err := c.ToPomodoroDomainConfig().Validate(); err != nil {
		return err
	}
	if err := c.ToRampDomainConfig().Validate(); err != nil {
		return err
	}
	if c.Flash.Kelvin <= 0 || c.Flash.Cycles < 0 || c.Flash.Phase < 0 {
		return fmt.Errorf("invalid flash settings: kelvin %d, cycles %d, phase %s",
			c.Flash.Kelvin, c.Flash.Cycles, c.Flash.Phase)
	}
	if c.Loop.PollInterval <= 0 || c.Loop.PollInterval > time.Minute {
		return fmt.Errorf("loop.poll_interval must be in (0, 1m], got %s", c.Loop.PollInterval)
	}
	if strings.TrimSpace(c.Screen.Command) == "" {
		return errors.New("screen.command cannot be empty")
	}
	switch c.Notifications.Backend {
	case BackendAuto, BackendDBus, BackendBeeep:
	default:
		return fmt.Errorf("unknown notifications.backend %q (want auto, dbus or beeep)", c.Notifications.Backend)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// ToPomodoroDomainConfig converts the config to the domain PomodoroConfig.
func (c *Config) ToPomodoroDomainConfig() domain.PomodoroConfig {
	return domain.PomodoroConfig{
		FocusDuration:      c.Pomodoro.Focus,
		ShortBreakDuration: c.Pomodoro.ShortBreak,
		LongBreakDuration:  c.Pomodoro.LongBreak,
		LongBreakEvery:     c.Pomodoro.LongBreakEvery,
	}
}

// ToRampDomainConfig converts the config to the domain RampConfig.
func (c *Config) ToRampDomainConfig() domain.RampConfig {
	steps := make([]domain.RampStep, len(c.Ramp.Steps))
	for i, s := range c.Ramp.Steps {
		steps[i] = domain.RampStep{MinutesBefore: s.MinutesBefore, Kelvin: s.Kelvin}
	}
	return domain.RampConfig{
		Steps:          steps,
		ReminderBefore: c.Ramp.ReminderBefore,
		FinalKelvin:    c.Ramp.FinalKelvin,
		BaselineKelvin: c.Ramp.BaselineKelvin,
	}
}

// ToFlashDomainConfig converts the config to the domain FlashConfig.
func (c *Config) ToFlashDomainConfig() domain.FlashConfig {
	return domain.FlashConfig{
		Kelvin: c.Flash.Kelvin,
		Cycles: c.Flash.Cycles,
		Phase:  c.Flash.Phase,
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("DUSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	steps := make([]map[string]any, len(d.Ramp.Steps))
	for i, s := range d.Ramp.Steps {
		steps[i] = map[string]any{"minutes_before": s.MinutesBefore, "kelvin": s.Kelvin}
	}

	v.SetDefault("pomodoro.focus", d.Pomodoro.Focus.String())
	v.SetDefault("pomodoro.short_break", d.Pomodoro.ShortBreak.String())
	v.SetDefault("pomodoro.long_break", d.Pomodoro.LongBreak.String())
	v.SetDefault("pomodoro.long_break_every", d.Pomodoro.LongBreakEvery)
	v.SetDefault("ramp.steps", steps)
	v.SetDefault("ramp.reminder_before", d.Ramp.ReminderBefore.String())
	v.SetDefault("ramp.final_kelvin", d.Ramp.FinalKelvin)
	v.SetDefault("ramp.baseline_kelvin", d.Ramp.BaselineKelvin)
	v.SetDefault("flash.kelvin", d.Flash.Kelvin)
	v.SetDefault("flash.cycles", d.Flash.Cycles)
	v.SetDefault("flash.phase", d.Flash.Phase.String())
	v.SetDefault("loop.poll_interval", d.Loop.PollInterval.String())
	v.SetDefault("screen.command", d.Screen.Command)
	v.SetDefault("screen.restore_on_interrupt", d.Screen.RestoreOnInterrupt)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.backend", d.Notifications.Backend)
	v.SetDefault("notifications.icon", d.Notifications.Icon)
	v.SetDefault("plan.allow_overlap", d.Plan.AllowOverlap)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.data_dir", d.History.DataDir)
	v.SetDefault("log.level", d.Log.Level)
}

// expandHome resolves a leading ~ and fills in the default data directory.
func expandHome(dir string) (string, error) {
	if dir == "" {
		dir = defaultDataDir
	}
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(dir, "~")), nil
}
