package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/dusk/internal/adapters/planfile"
	"github.com/xvierd/dusk/internal/domain"
)

var checkJSON bool

// checkCmd validates a plan file without running it.
var checkCmd = &cobra.Command{
	Use:   "check <plan.yaml>",
	Short: "Validate a plan file and print its schedule",
	Long: `Parse a plan file, check it for overlapping tasks and print what the day
will look like: each task, the screen ramp, the reminder and bedtime.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planfile.Load(args[0])
		if err != nil {
			return err
		}
		if err := plan.Validate(app.config.Plan.AllowOverlap); err != nil {
			return fmt.Errorf("invalid plan: %w", err)
		}

		ramp := app.config.ToRampDomainConfig()
		s := buildSchedule(plan, ramp)

		if checkJSON {
			tasks := make([]map[string]interface{}, 0, len(s.tasks))
			for _, t := range s.tasks {
				tasks = append(tasks, map[string]interface{}{
					"name":    t.Name,
					"start":   t.Start.String(),
					"end":     t.End.String(),
					"minutes": int(t.Span().Minutes()),
					"wraps":   t.Wraps(),
				})
			}
			steps := make([]map[string]interface{}, 0, len(s.ramp))
			for _, r := range s.ramp {
				steps = append(steps, map[string]interface{}{
					"at":     r.at.String(),
					"kelvin": r.kelvin,
				})
			}
			data := map[string]interface{}{
				"bedtime":      plan.Bedtime().String(),
				"tasks":        tasks,
				"ramp":         steps,
				"final_kelvin": ramp.FinalKelvin,
				"overlaps":     len(s.overlaps),
			}
			if s.reminder != nil {
				data["reminder"] = s.reminder.String()
			}
			return printJSON(cmd.OutOrStdout(), data)
		}

		printSchedule(cmd, plan, s, ramp.FinalKelvin)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the schedule as JSON")
}

type rampTime struct {
	at     domain.TimeOfDay
	kelvin int
}

// schedule is the static view of a plan: what fires when, ignoring
// when the run is started.
type schedule struct {
	tasks    []domain.Task
	ramp     []rampTime
	reminder *domain.TimeOfDay
	overlaps []domain.TaskOverlap
}

func buildSchedule(plan domain.Plan, ramp domain.RampConfig) schedule {
	bedtime := plan.Bedtime()
	s := schedule{
		tasks:    plan.Tasks(),
		overlaps: plan.Overlaps(),
	}
	for _, step := range ramp.Steps {
		s.ramp = append(s.ramp, rampTime{
			at:     bedtime.Add(-time.Duration(step.MinutesBefore) * time.Minute),
			kelvin: step.Kelvin,
		})
	}
	if ramp.ReminderBefore > 0 {
		at := bedtime.Add(-ramp.ReminderBefore)
		s.reminder = &at
	}
	return s
}

func printSchedule(cmd *cobra.Command, plan domain.Plan, s schedule, finalKelvin int) {
	out := cmd.OutOrStdout()
	st := newOutputStyles(out)

	fmt.Fprintf(out, "%s %s\n\n", st.title.Render("Plan for bedtime"), st.value.Render(plan.Bedtime().String()))

	if len(s.tasks) == 0 {
		fmt.Fprintf(out, "  %s\n", st.dim.Render("No tasks. Only the bedtime ramp will run."))
	} else {
		fmt.Fprintf(out, "  %s\n", st.dim.Render(fmt.Sprintf("Tasks (%d)", len(s.tasks))))
		for _, t := range s.tasks {
			span := formatMinutes(t.Span())
			if t.Wraps() {
				span += ", past midnight"
			}
			fmt.Fprintf(out, "    %s-%s  %-20s %s\n", t.Start, t.End, t.Name, st.dim.Render(span))
		}
	}
	for _, o := range s.overlaps {
		a, b := s.tasks[o.First], s.tasks[o.Second]
		fmt.Fprintf(out, "    %s\n", st.warn.Render(fmt.Sprintf("%q overlaps %q", a.Name, b.Name)))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %s\n", st.dim.Render("Evening"))
	for _, r := range s.ramp {
		fmt.Fprintf(out, "    %s  screen to %dK\n", r.at, r.kelvin)
	}
	if s.reminder != nil {
		fmt.Fprintf(out, "    %s  bedtime reminder\n", s.reminder)
	}
	fmt.Fprintf(out, "    %s  %s\n", plan.Bedtime(), st.accent.Render(fmt.Sprintf("bedtime, screen to %dK", finalKelvin)))
}
