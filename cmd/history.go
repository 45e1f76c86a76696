package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/xvierd/dusk/internal/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists journaled runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs from the journal",
	Long: `List the most recent runs recorded in the journal. Runs are recorded when
history.enabled is set in the config or --db is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openStorage(true); err != nil {
			return err
		}

		runs, err := app.storage.Runs().FindRecent(context.Background(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		out := cmd.OutOrStdout()
		if historyJSON {
			runList := make([]map[string]interface{}, 0, len(runs))
			for _, run := range runs {
				runList = append(runList, runJSON(run))
			}
			return printJSON(out, map[string]interface{}{
				"runs":  runList,
				"count": len(runList),
			})
		}

		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}

		st := newOutputStyles(out)
		fmt.Fprintf(out, "%s\n\n", st.title.Render(fmt.Sprintf("Runs (%d)", len(runs))))
		for _, run := range runs {
			fmt.Fprintf(out, "  %s  %-11s bedtime %s  %d tasks  %d pomodoros  %s\n",
				st.dim.Render(domain.ShortID(run.ID)),
				domain.GetRunStatusLabel(run.Status),
				run.Bedtime,
				run.TaskCount,
				run.Pomodoros,
				st.dim.Render(describeRunTime(run)),
			)
		}
		return nil
	},
}

// historyEventsCmd lists the events of one run.
var historyEventsCmd = &cobra.Command{
	Use:   "events <run-id>",
	Short: "List the events recorded for a run",
	Long:  `List the notifications and screen changes of a run. The id may be any unique prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openStorage(true); err != nil {
			return err
		}

		ctx := context.Background()
		run, err := app.storage.Runs().FindByID(ctx, args[0])
		if err != nil {
			return err
		}
		records, err := app.storage.Runs().FindEvents(ctx, run.ID)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		out := cmd.OutOrStdout()
		if historyJSON {
			events := make([]map[string]interface{}, 0, len(records))
			for _, r := range records {
				e := map[string]interface{}{
					"type":        string(r.Event.Type),
					"at":          r.Event.At.String(),
					"summary":     r.Event.Summary,
					"recorded_at": r.RecordedAt.Format(time.RFC3339),
				}
				if r.Event.Task != "" {
					e["task"] = r.Event.Task
				}
				if r.Event.Body != "" {
					e["body"] = r.Event.Body
				}
				if r.Event.Kelvin != 0 {
					e["kelvin"] = r.Event.Kelvin
				}
				events = append(events, e)
			}
			data := runJSON(run)
			data["events"] = events
			return printJSON(out, data)
		}

		st := newOutputStyles(out)
		fmt.Fprintf(out, "%s %s  %s\n\n",
			st.title.Render("Run"),
			st.value.Render(domain.ShortID(run.ID)),
			st.dim.Render(fmt.Sprintf("%s, %s", domain.GetRunStatusLabel(run.Status), describeRunTime(run))),
		)
		if len(records) == 0 {
			fmt.Fprintln(out, "  No events recorded.")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(out, "  [%s] %-12s %s\n", r.Event.At, domain.GetEventTypeLabel(r.Event.Type), r.Event.Summary)
		}
		return nil
	},
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "Output results in JSON format")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.AddCommand(historyEventsCmd)
}

func runJSON(run *domain.Run) map[string]interface{} {
	data := map[string]interface{}{
		"id":         run.ID,
		"status":     string(run.Status),
		"started_at": run.StartedAt.Format(time.RFC3339),
		"bedtime":    run.Bedtime.String(),
		"tasks":      run.TaskNames,
		"pomodoros":  run.Pomodoros,
	}
	if run.FinishedAt != nil {
		data["finished_at"] = run.FinishedAt.Format(time.RFC3339)
		data["duration_minutes"] = int(run.Duration().Minutes())
	}
	return data
}

// describeRunTime renders "started 2 hours ago, ran 3h30m".
func describeRunTime(run *domain.Run) string {
	parts := []string{"started " + humanize.Time(run.StartedAt)}
	if run.FinishedAt != nil {
		parts = append(parts, "ran "+formatMinutes(run.Duration()))
	}
	return strings.Join(parts, ", ")
}
