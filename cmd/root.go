// Package cmd provides the CLI commands for the Dusk application.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xvierd/dusk/internal/adapters/clock"
	"github.com/xvierd/dusk/internal/adapters/console"
	"github.com/xvierd/dusk/internal/adapters/notification"
	"github.com/xvierd/dusk/internal/adapters/planfile"
	"github.com/xvierd/dusk/internal/adapters/prompt"
	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	dbPath     string
	logLevel   string
	noColor    bool

	// Run flags
	planPath string
	dryRun   bool
)

// rootCmd runs a day when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dusk",
	Short: "Dusk - task reminders, pomodoros and a warmer screen until bedtime",
	Long: `Dusk asks for your bedtime and today's tasks, then stays in the foreground
until bedtime. It notifies you when each task starts and ends, runs pomodoros
inside the active task and warms the screen through xsct as bedtime nears.

Run "dusk" with no arguments to enter the plan interactively, or pass
--plan with a YAML file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runDay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.dusk/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the run journal (default: ~/.dusk/dusk.db, enables history)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVarP(&planPath, "plan", "p", "", "Read the plan from a YAML file instead of prompting")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log screen changes instead of running the tint command")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Dusk\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	// Resolve the tint command first so a missing one fails before any prompt.
	tint, err := newScreen(dryRun)
	if err != nil {
		return err
	}

	plan, err := readPlan(cmd)
	if err != nil {
		return err
	}
	if err := plan.Validate(app.config.Plan.AllowOverlap); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	notifier, err := notification.New(&app.config.Notifications, app.log)
	if err != nil {
		return err
	}
	defer func() { _ = notifier.Close() }()

	if err := openStorage(false); err != nil {
		return err
	}

	out := console.NewStdout(noColor)
	day := services.NewDayService(clock.System{}, notifier, tint, out, app.log)
	day.SetConfig(serviceConfig(app.config))
	if app.storage != nil {
		day.SetStorage(app.storage)
	}

	ctx := setupSignalHandler()
	run, err := day.Run(ctx, plan)
	if err != nil {
		if errors.Is(err, domain.ErrInterrupted) {
			out.Info(fmt.Sprintf("Stopped before bedtime after %d pomodoros.", run.Pomodoros))
		}
		return err
	}

	out.Info(fmt.Sprintf("Good night. %d pomodoros today.", run.Pomodoros))
	return nil
}

// readPlan loads --plan when given and prompts on stdin otherwise.
func readPlan(cmd *cobra.Command) (domain.Plan, error) {
	if planPath == "" {
		return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).ReadPlan()
	}

	plan, err := planfile.Load(planPath)
	if err != nil {
		return domain.Plan{}, err
	}
	prompt.Announce(cmd.OutOrStdout(), plan)
	return plan, nil
}
