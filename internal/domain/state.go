package domain

// TaskState tracks which boundary events already fired for one task.
type TaskState struct {
	Began bool
	Ended bool
}

// RampState tracks the one-shot bedtime transitions.
type RampState struct {
	// Done has one entry per configured ramp step.
	Done         []bool
	ReminderSent bool
}

// RunState is all mutable state of a run, owned by the main loop.
type RunState struct {
	// Tasks is parallel to the plan's task list.
	Tasks []TaskState
	// Pomodoro is nil while no task is active.
	Pomodoro       *Pomodoro
	TotalPomodoros int
	Ramp           RampState
	ScreenKelvin   int
	// LastTick is the time of the previous tick, nil before the first.
	LastTick *TimeOfDay
	Finished bool
}

// NewRunState returns the initial state for a plan with taskCount tasks
// and rampSteps configured ramp steps.
func NewRunState(taskCount, rampSteps, baselineKelvin int) RunState {
	return RunState{
		Tasks:        make([]TaskState, taskCount),
		Ramp:         RampState{Done: make([]bool, rampSteps)},
		ScreenKelvin: baselineKelvin,
	}
}

// Clone returns a deep copy of the state.
func (s RunState) Clone() RunState {
	out := s
	out.Tasks = append([]TaskState(nil), s.Tasks...)
	out.Ramp.Done = append([]bool(nil), s.Ramp.Done...)
	if s.Pomodoro != nil {
		p := *s.Pomodoro
		out.Pomodoro = &p
	}
	if s.LastTick != nil {
		t := *s.LastTick
		out.LastTick = &t
	}
	return out
}

// ActiveTask returns the name of the task owning the pomodoro, if any.
func (s RunState) ActiveTask() (string, bool) {
	if s.Pomodoro == nil {
		return "", false
	}
	return s.Pomodoro.Task, true
}
