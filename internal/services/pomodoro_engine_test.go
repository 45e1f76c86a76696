package services

import (
	"testing"
	"time"

	"github.com/xvierd/dusk/internal/domain"
)

func TestPomodoroEngine_Step(t *testing.T) {
	engine := NewPomodoroEngine(domain.DefaultPomodoroConfig())

	tests := []struct {
		name      string
		pomodoro  *domain.Pomodoro
		now       string
		wantTypes []domain.EventType
		wantFocus bool
		wantCount int
	}{
		{
			name:      "no pomodoro",
			now:       "10:00",
			wantTypes: nil,
		},
		{
			name:      "focus in progress",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 1, Phase: domain.Focus{Start: at("10:00")}},
			now:       "10:10",
			wantTypes: []domain.EventType{domain.EventFocusProgress},
			wantFocus: true,
			wantCount: 1,
		},
		{
			name:      "focus exactly at its length waits",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 1, Phase: domain.Focus{Start: at("10:00")}},
			now:       "10:25",
			wantTypes: nil,
			wantFocus: true,
			wantCount: 1,
		},
		{
			name:      "focus over starts a break",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 1, Phase: domain.Focus{Start: at("10:00")}},
			now:       "10:26",
			wantTypes: []domain.EventType{domain.EventBreakStarted},
			wantFocus: false,
			wantCount: 2,
		},
		{
			name:      "break still running",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 2, Phase: domain.Break{Since: at("10:26"), Until: at("10:31")}},
			now:       "10:30",
			wantTypes: nil,
			wantFocus: false,
			wantCount: 2,
		},
		{
			name:      "break over exactly at its end",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 2, Phase: domain.Break{Since: at("10:26"), Until: at("10:31")}},
			now:       "10:31",
			wantTypes: []domain.EventType{domain.EventFocusStarted, domain.EventFocusProgress},
			wantFocus: true,
			wantCount: 2,
		},
		{
			name:      "break crossing midnight",
			pomodoro:  &domain.Pomodoro{Task: "t", Count: 2, Phase: domain.Break{Since: at("23:58"), Until: at("00:03")}},
			now:       "00:01",
			wantTypes: nil,
			wantFocus: false,
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewRunState(1, 0, domain.BaselineKelvin)
			state.Pomodoro = tt.pomodoro

			events := engine.Step(at(tt.now), &state)

			var types []domain.EventType
			for _, e := range events {
				types = append(types, e.Type)
			}
			if len(types) != len(tt.wantTypes) {
				t.Fatalf("Step() types = %v, want %v", types, tt.wantTypes)
			}
			for i := range types {
				if types[i] != tt.wantTypes[i] {
					t.Errorf("Step() types = %v, want %v", types, tt.wantTypes)
				}
			}
			if state.Pomodoro == nil {
				return
			}
			if state.Pomodoro.IsFocus() != tt.wantFocus {
				t.Errorf("IsFocus() = %v, want %v", state.Pomodoro.IsFocus(), tt.wantFocus)
			}
			if state.Pomodoro.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", state.Pomodoro.Count, tt.wantCount)
			}
		})
	}
}

func TestPomodoroEngine_LongBreakEvery(t *testing.T) {
	cfg := domain.PomodoroConfig{
		FocusDuration:      time.Minute,
		ShortBreakDuration: time.Minute,
		LongBreakDuration:  3 * time.Minute,
		LongBreakEvery:     2,
	}
	engine := NewPomodoroEngine(cfg)
	state := domain.NewRunState(1, 0, domain.BaselineKelvin)
	engine.Begin(at("10:00"), 0, task("t", "09:00", "12:00"), &state)

	var longs []bool
	now := at("10:00")
	for i := 0; i < 12; i++ {
		now = now.Add(time.Minute)
		for _, e := range engine.Step(now, &state) {
			if e.Type == domain.EventBreakStarted {
				brk := state.Pomodoro.Phase.(domain.Break)
				longs = append(longs, brk.Long)
			}
		}
	}

	want := []bool{false, true, false}
	if len(longs) < len(want) {
		t.Fatalf("breaks = %v, want at least %v", longs, want)
	}
	for i, w := range want {
		if longs[i] != w {
			t.Errorf("break %d long = %v, want %v", i+1, longs[i], w)
		}
	}
	if state.TotalPomodoros != len(longs) {
		t.Errorf("TotalPomodoros = %d, want %d", state.TotalPomodoros, len(longs))
	}
}

func TestPomodoroEngine_Begin(t *testing.T) {
	engine := NewPomodoroEngine(domain.DefaultPomodoroConfig())
	state := domain.NewRunState(2, 0, domain.BaselineKelvin)

	e := engine.Begin(at("14:00"), 1, task("write", "14:00", "15:00"), &state)

	if e.Summary != "Pomodoro 1 of task write has begun" {
		t.Errorf("Begin() summary = %q", e.Summary)
	}
	if e.Body != "25 minutes of focused work starting now!" {
		t.Errorf("Begin() body = %q", e.Body)
	}
	if state.Pomodoro == nil || state.Pomodoro.TaskIndex != 1 || state.Pomodoro.Count != 1 {
		t.Errorf("Begin() pomodoro = %+v", state.Pomodoro)
	}
}
