// Package domain contains the core entities for Dusk.
// These entities describe a day plan, the clock it runs on and the events
// the scheduler emits, independent of any notifier, screen tool or storage.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrInvalidTimeFormat        = errors.New("invalid time, expected HH:MM")
	ErrEmptyTaskName            = errors.New("task name cannot be empty")
	ErrZeroLengthTask           = errors.New("task start and end cannot be equal")
	ErrOverlappingTasks         = errors.New("tasks overlap")
	ErrInputClosed              = errors.New("input ended before the task was complete")
	ErrActuatorMissing          = errors.New("screen tint command not found")
	ErrNotificationsUnavailable = errors.New("notification service unavailable")
	ErrInterrupted              = errors.New("interrupted before bedtime")
	ErrRunNotFound              = errors.New("run not found")
	ErrInvalidRamp              = errors.New("invalid bedtime ramp")
)

// Task is a named block of the day. When End is before Start the task
// wraps past midnight.
type Task struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

// NewTask creates a task, trimming the name.
func NewTask(name string, start, end TimeOfDay) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, ErrEmptyTaskName
	}
	if start == end {
		return Task{}, fmt.Errorf("%w: %q at %s", ErrZeroLengthTask, name, start)
	}
	return Task{Name: name, Start: start, End: end}, nil
}

// Wraps reports whether the task crosses midnight.
func (t Task) Wraps() bool {
	return t.End < t.Start
}

// Span returns how long the task lasts.
func (t Task) Span() time.Duration {
	return DurationFrom(t.Start, t.End)
}

// inGap reports whether now is between End and Start (inclusive) of a
// wrapping task.
func (t Task) inGap(now TimeOfDay) bool {
	return t.End <= now && now <= t.Start
}

// InWindow reports whether now is strictly inside (Start, End).
func (t Task) InWindow(now TimeOfDay) bool {
	if t.Wraps() {
		return !t.inGap(now)
	}
	return t.Start < now && now < t.End
}

// Ended reports whether the task is over at now. Reaching End counts.
func (t Task) Ended(now TimeOfDay) bool {
	if t.Wraps() {
		return t.inGap(now)
	}
	return now >= t.End
}

// BeforeStart reports whether now precedes Start.
func (t Task) BeforeStart(now TimeOfDay) bool {
	if t.Wraps() {
		return t.inGap(now) && now < t.Start
	}
	return now < t.Start
}

// BeforeEnd reports whether now precedes End.
func (t Task) BeforeEnd(now TimeOfDay) bool {
	if t.Wraps() {
		return !t.inGap(now)
	}
	return now < t.End
}

// segments splits the half-open window [Start, End) into linear minute
// ranges that do not cross midnight.
func (t Task) segments() [][2]int {
	if t.Wraps() {
		return [][2]int{{int(t.Start), MinutesPerDay}, {0, int(t.End)}}
	}
	return [][2]int{{int(t.Start), int(t.End)}}
}

// Overlaps reports whether the windows of t and o share any minute.
// Adjacent tasks, where one ends as the other starts, do not overlap.
func (t Task) Overlaps(o Task) bool {
	for _, a := range t.segments() {
		for _, b := range o.segments() {
			if a[0] < b[1] && b[0] < a[1] {
				return true
			}
		}
	}
	return false
}

// Plan is the immutable input of a run: a bedtime and the tasks in the
// order they were entered.
type Plan struct {
	bedtime TimeOfDay
	tasks   []Task
}

// NewPlan builds a plan. The task slice is copied.
func NewPlan(bedtime TimeOfDay, tasks []Task) Plan {
	cp := make([]Task, len(tasks))
	copy(cp, tasks)
	return Plan{bedtime: bedtime, tasks: cp}
}

// Bedtime returns the time the run ends.
func (p Plan) Bedtime() TimeOfDay {
	return p.bedtime
}

// Len returns the number of tasks.
func (p Plan) Len() int {
	return len(p.tasks)
}

// Task returns the task at index i.
func (p Plan) Task(i int) Task {
	return p.tasks[i]
}

// Tasks returns a copy of the tasks in plan order.
func (p Plan) Tasks() []Task {
	cp := make([]Task, len(p.tasks))
	copy(cp, p.tasks)
	return cp
}

// Names returns the task names in plan order.
func (p Plan) Names() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name
	}
	return names
}

// Next returns the task following index i in plan order.
func (p Plan) Next(i int) (Task, bool) {
	if i+1 >= len(p.tasks) {
		return Task{}, false
	}
	return p.tasks[i+1], true
}

// TaskOverlap names two overlapping tasks by index.
type TaskOverlap struct {
	First  int
	Second int
}

// Overlaps lists every overlapping pair of tasks.
func (p Plan) Overlaps() []TaskOverlap {
	var out []TaskOverlap
	for i := range p.tasks {
		for j := i + 1; j < len(p.tasks); j++ {
			if p.tasks[i].Overlaps(p.tasks[j]) {
				out = append(out, TaskOverlap{First: i, Second: j})
			}
		}
	}
	return out
}

// Validate checks the plan. Overlapping tasks are rejected unless
// allowOverlap is set.
func (p Plan) Validate(allowOverlap bool) error {
	for _, t := range p.tasks {
		if strings.TrimSpace(t.Name) == "" {
			return ErrEmptyTaskName
		}
		if t.Start == t.End {
			return fmt.Errorf("%w: %q at %s", ErrZeroLengthTask, t.Name, t.Start)
		}
	}
	if allowOverlap {
		return nil
	}
	if overlaps := p.Overlaps(); len(overlaps) > 0 {
		a, b := p.tasks[overlaps[0].First], p.tasks[overlaps[0].Second]
		return fmt.Errorf("%w: %q (%s-%s) and %q (%s-%s)", ErrOverlappingTasks,
			a.Name, a.Start, a.End, b.Name, b.Start, b.End)
	}
	return nil
}
