package domain

import "time"

// RunStatus represents how a run ended.
type RunStatus string

const (
	RunStatusRunning     RunStatus = "running"
	RunStatusCompleted   RunStatus = "completed"
	RunStatusInterrupted RunStatus = "interrupted"
)

// Run is one journaled execution of a plan, from start to bedtime.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Bedtime    TimeOfDay
	TaskCount  int
	TaskNames  []string
	Pomodoros  int
	Status     RunStatus
}

// NewRun creates a running journal entry for plan.
func NewRun(plan Plan, startedAt time.Time) *Run {
	return &Run{
		ID:        generateID(),
		StartedAt: startedAt,
		Bedtime:   plan.Bedtime(),
		TaskCount: plan.Len(),
		TaskNames: plan.Names(),
		Status:    RunStatusRunning,
	}
}

// Complete marks the run as having reached bedtime.
func (r *Run) Complete(pomodoros int, at time.Time) {
	r.Pomodoros = pomodoros
	r.FinishedAt = &at
	r.Status = RunStatusCompleted
}

// Interrupt marks the run as stopped before bedtime.
func (r *Run) Interrupt(pomodoros int, at time.Time) {
	r.Pomodoros = pomodoros
	r.FinishedAt = &at
	r.Status = RunStatusInterrupted
}

// Duration returns how long the run lasted, or 0 while it is running.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// EventRecord is a dispatched event stored in the journal.
type EventRecord struct {
	RunID      string
	RecordedAt time.Time
	Event      Event
}

// GetRunStatusLabel returns a human-readable label for the run status.
func GetRunStatusLabel(s RunStatus) string {
	switch s {
	case RunStatusRunning:
		return "Running"
	case RunStatusCompleted:
		return "Completed"
	case RunStatusInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}
