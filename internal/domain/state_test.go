package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewRunState(t *testing.T) {
	s := NewRunState(2, 3, BaselineKelvin)
	if len(s.Tasks) != 2 {
		t.Errorf("len(Tasks) = %d, want 2", len(s.Tasks))
	}
	if len(s.Ramp.Done) != 3 {
		t.Errorf("len(Ramp.Done) = %d, want 3", len(s.Ramp.Done))
	}
	if s.ScreenKelvin != 6500 {
		t.Errorf("ScreenKelvin = %d, want 6500", s.ScreenKelvin)
	}
	if s.Pomodoro != nil || s.LastTick != nil || s.Finished {
		t.Error("NewRunState() should start idle")
	}
}

func TestRunState_Clone(t *testing.T) {
	s := NewRunState(1, 1, BaselineKelvin)
	tick := MustTimeOfDay(9, 0)
	s.LastTick = &tick
	s.Pomodoro = NewPomodoro(0, "work", tick)

	c := s.Clone()
	c.Tasks[0].Began = true
	c.Ramp.Done[0] = true
	c.Pomodoro.Count = 7
	*c.LastTick = MustTimeOfDay(10, 0)

	if s.Tasks[0].Began || s.Ramp.Done[0] {
		t.Error("Clone() shares slices with the original")
	}
	if s.Pomodoro.Count != 1 {
		t.Error("Clone() shares the pomodoro with the original")
	}
	if *s.LastTick != tick {
		t.Error("Clone() shares LastTick with the original")
	}
}

func TestRunState_ActiveTask(t *testing.T) {
	s := NewRunState(1, 0, BaselineKelvin)
	if _, ok := s.ActiveTask(); ok {
		t.Error("ActiveTask() should be empty without a pomodoro")
	}
	s.Pomodoro = NewPomodoro(0, "read", MustTimeOfDay(20, 1))
	if name, ok := s.ActiveTask(); !ok || name != "read" {
		t.Errorf("ActiveTask() = %q, %v, want read, true", name, ok)
	}
}

func TestPomodoro_Phases(t *testing.T) {
	p := NewPomodoro(2, "work", MustTimeOfDay(9, 1))
	if p.Count != 1 || !p.IsFocus() || p.IsBreak() {
		t.Fatalf("NewPomodoro() = %+v, want count 1 in focus", p)
	}
	p.Phase = Break{Since: MustTimeOfDay(9, 27), Until: MustTimeOfDay(9, 32)}
	if !p.IsBreak() || p.IsFocus() {
		t.Error("IsBreak() should report a break phase")
	}
}

func TestPomodoroConfig_Validate(t *testing.T) {
	if err := DefaultPomodoroConfig().Validate(); err != nil {
		t.Errorf("default config Validate() error = %v", err)
	}
	bad := DefaultPomodoroConfig()
	bad.LongBreakEvery = 0
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject long_break_every 0")
	}
	bad = DefaultPomodoroConfig()
	bad.FocusDuration = 30 * time.Second
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject sub-minute focus")
	}
}

func TestRampConfig_Validate(t *testing.T) {
	if err := DefaultRampConfig().Validate(); err != nil {
		t.Errorf("default ramp Validate() error = %v", err)
	}

	tests := []struct {
		name  string
		steps []RampStep
	}{
		{"ascending", []RampStep{{120, 2000}, {150, 3000}}},
		{"duplicate", []RampStep{{120, 2000}, {120, 3000}}},
		{"zero minutes", []RampStep{{0, 2000}}},
		{"negative kelvin", []RampStep{{120, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRampConfig()
			cfg.Steps = tt.steps
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidRamp) {
				t.Errorf("Validate() error = %v, want ErrInvalidRamp", err)
			}
		})
	}
}

func TestEvent_Routing(t *testing.T) {
	notifying := []EventType{EventTaskStarted, EventTaskEnded, EventFocusStarted, EventBreakStarted, EventBedtimeReminder, EventBedtime}
	for _, typ := range notifying {
		if !(Event{Type: typ}).Notifies() {
			t.Errorf("%s should notify", typ)
		}
	}
	silent := []EventType{EventFocusProgress, EventScreenFlash, EventScreenRamp, EventScreenSet}
	for _, typ := range silent {
		if (Event{Type: typ}).Notifies() {
			t.Errorf("%s should not notify", typ)
		}
	}
	if !(Event{Type: EventScreenRamp}).SetsScreen() || !(Event{Type: EventScreenSet}).SetsScreen() {
		t.Error("ramp and set events should set the screen")
	}
	if (Event{Type: EventScreenFlash}).SetsScreen() {
		t.Error("flash is handled separately from SetsScreen")
	}
}

func TestRun_Lifecycle(t *testing.T) {
	plan := NewPlan(MustTimeOfDay(23, 0), []Task{{Name: "read", Start: MustTimeOfDay(20, 0), End: MustTimeOfDay(20, 10)}})
	started := time.Date(2026, 2, 9, 19, 59, 0, 0, time.UTC)

	run := NewRun(plan, started)
	if run.ID == "" || run.Status != RunStatusRunning {
		t.Fatalf("NewRun() = %+v, want running with id", run)
	}
	if run.TaskCount != 1 || run.TaskNames[0] != "read" {
		t.Errorf("NewRun() tasks = %d %v", run.TaskCount, run.TaskNames)
	}
	if run.Duration() != 0 {
		t.Error("Duration() should be 0 while running")
	}

	run.Complete(3, started.Add(3*time.Hour))
	if run.Status != RunStatusCompleted || run.Pomodoros != 3 {
		t.Errorf("Complete() = %+v", run)
	}
	if run.Duration() != 3*time.Hour {
		t.Errorf("Duration() = %v, want 3h", run.Duration())
	}

	other := NewRun(plan, started)
	other.Interrupt(0, started.Add(time.Minute))
	if other.Status != RunStatusInterrupted {
		t.Errorf("Interrupt() status = %v", other.Status)
	}
	if other.ID == run.ID {
		t.Error("NewRun() should generate unique ids")
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("ShortID() = %q, want 01234567", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID() = %q, want abc", got)
	}
}

func TestGetRunStatusLabel(t *testing.T) {
	tests := []struct {
		status RunStatus
		want   string
	}{
		{RunStatusRunning, "Running"},
		{RunStatusCompleted, "Completed"},
		{RunStatusInterrupted, "Interrupted"},
		{RunStatus("other"), "Unknown"},
	}
	for _, tt := range tests {
		if got := GetRunStatusLabel(tt.status); got != tt.want {
			t.Errorf("GetRunStatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
