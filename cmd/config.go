package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/dusk/internal/config"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration Dusk runs with: the file values merged with the
defaults and any DUSK_* environment overrides. Edit the file to change it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		cfg := app.config
		out := cmd.OutOrStdout()

		if configJSON {
			steps := make([]map[string]interface{}, 0, len(cfg.Ramp.Steps))
			for _, s := range cfg.Ramp.Steps {
				steps = append(steps, map[string]interface{}{
					"minutes_before": s.MinutesBefore,
					"kelvin":         s.Kelvin,
				})
			}
			return printJSON(out, map[string]interface{}{
				"path": path,
				"pomodoro": map[string]interface{}{
					"focus":            cfg.Pomodoro.Focus.String(),
					"short_break":      cfg.Pomodoro.ShortBreak.String(),
					"long_break":       cfg.Pomodoro.LongBreak.String(),
					"long_break_every": cfg.Pomodoro.LongBreakEvery,
				},
				"ramp": map[string]interface{}{
					"steps":           steps,
					"reminder_before": cfg.Ramp.ReminderBefore.String(),
					"final_kelvin":    cfg.Ramp.FinalKelvin,
					"baseline_kelvin": cfg.Ramp.BaselineKelvin,
				},
				"flash": map[string]interface{}{
					"kelvin": cfg.Flash.Kelvin,
					"cycles": cfg.Flash.Cycles,
					"phase":  cfg.Flash.Phase.String(),
				},
				"loop": map[string]interface{}{
					"poll_interval": cfg.Loop.PollInterval.String(),
				},
				"screen": map[string]interface{}{
					"command":              cfg.Screen.Command,
					"restore_on_interrupt": cfg.Screen.RestoreOnInterrupt,
				},
				"notifications": map[string]interface{}{
					"enabled": cfg.Notifications.Enabled,
					"backend": cfg.Notifications.Backend,
					"icon":    cfg.Notifications.Icon,
				},
				"plan": map[string]interface{}{
					"allow_overlap": cfg.Plan.AllowOverlap,
				},
				"history": map[string]interface{}{
					"enabled":  cfg.History.Enabled,
					"data_dir": cfg.History.DataDir,
				},
				"log": map[string]interface{}{
					"level": cfg.Log.Level,
				},
			})
		}

		st := newOutputStyles(out)
		row := func(label, value string) {
			fmt.Fprintf(out, "  %s %s\n", st.dim.Render(fmt.Sprintf("%-14s", label)), value)
		}

		fmt.Fprintf(out, "%s %s\n\n", st.title.Render("Config"), path)
		row("Pomodoro", fmt.Sprintf("%s focus, %s short break, %s long break every %d",
			formatMinutes(cfg.Pomodoro.Focus), formatMinutes(cfg.Pomodoro.ShortBreak),
			formatMinutes(cfg.Pomodoro.LongBreak), cfg.Pomodoro.LongBreakEvery))
		row("Ramp", describeRamp(cfg.Ramp.Steps))
		if cfg.Ramp.ReminderBefore > 0 {
			row("Reminder", formatMinutes(cfg.Ramp.ReminderBefore)+" before bedtime")
		} else {
			row("Reminder", "off")
		}
		row("Bedtime", fmt.Sprintf("%dK (baseline %dK)", cfg.Ramp.FinalKelvin, cfg.Ramp.BaselineKelvin))
		row("Flash", fmt.Sprintf("%d x %dK, %s phases", cfg.Flash.Cycles, cfg.Flash.Kelvin, cfg.Flash.Phase))
		row("Poll interval", cfg.Loop.PollInterval.String())
		row("Screen", fmt.Sprintf("%s (restore on interrupt: %s)", cfg.Screen.Command, onOff(cfg.Screen.RestoreOnInterrupt)))
		if cfg.Notifications.Enabled {
			row("Notifications", fmt.Sprintf("on (%s, icon %s)", cfg.Notifications.Backend, cfg.Notifications.Icon))
		} else {
			row("Notifications", "off")
		}
		if cfg.Plan.AllowOverlap {
			row("Overlaps", "allowed")
		} else {
			row("Overlaps", "rejected")
		}
		row("History", fmt.Sprintf("%s (%s)", onOff(cfg.History.Enabled), config.GetDBPath(cfg)))
		row("Log level", cfg.Log.Level)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output the configuration as JSON")
	configCmd.AddCommand(configPathCmd)
}

// resolvedConfigPath returns --config, or the default location.
func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// describeRamp renders steps as "4000K at 3h, 3000K at 2h30m".
func describeRamp(steps []config.RampStep) string {
	if len(steps) == 0 {
		return "off"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%dK at %s", s.Kelvin, formatMinutes(time.Duration(s.MinutesBefore)*time.Minute))
	}
	return strings.Join(parts, ", ") + " before bedtime"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
