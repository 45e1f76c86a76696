package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	resetForce  bool
	resetPurge  bool
	resetDryRun bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the normal screen temperature",
	Long: `Set the screen back to the baseline temperature, for example after a run
was killed before bedtime. With --purge-history the run journal is deleted
too. This cannot be undone. Use --force to skip the confirmation prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		tint, err := newScreen(resetDryRun)
		if err != nil {
			return err
		}
		baseline := app.config.Ramp.BaselineKelvin
		if err := tint.Set(baseline); err != nil {
			return fmt.Errorf("failed to restore screen: %w", err)
		}
		fmt.Fprintf(out, "Screen restored to %dK.\n", baseline)

		if !resetPurge {
			return nil
		}

		path := journalPath()
		if !resetForce {
			fmt.Fprintf(out, "This will permanently delete: %s\n", path)
			fmt.Fprint(out, "Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := os.Remove(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, "Nothing to purge, the journal does not exist.")
				return nil
			}
			return fmt.Errorf("failed to delete journal: %w", err)
		}

		fmt.Fprintln(out, "Journal deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetPurge, "purge-history", false, "Also delete the run journal")
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	resetCmd.Flags().BoolVar(&resetDryRun, "dry-run", false, "Log the screen change instead of running the tint command")
}
