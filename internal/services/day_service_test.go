package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/adapters/storage"
	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

func setupTestStorage(t *testing.T) ports.Storage {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDayService_Run(t *testing.T) {
	store := setupTestStorage(t)
	clock := newFakeClock(8, 30)
	screen := &fakeScreen{}
	notifier := &fakeNotifier{}

	service := NewDayService(clock, notifier, screen, &fakeConsole{}, zerolog.Nop())
	service.SetStorage(store)

	plan := newPlan("10:00", task("solo", "08:30", "09:30"))
	run, err := service.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if run.Status != domain.RunStatusCompleted {
		t.Errorf("Run() status = %v, want %v", run.Status, domain.RunStatusCompleted)
	}
	// The task begins at 08:31; pomodoros end at 08:57 and 09:28.
	if run.Pomodoros != 2 {
		t.Errorf("Run() pomodoros = %d, want 2", run.Pomodoros)
	}

	saved, err := store.Runs().FindByID(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if saved.Status != domain.RunStatusCompleted || saved.Pomodoros != 2 {
		t.Errorf("saved run = %+v, want completed with 2 pomodoros", saved)
	}

	records, err := store.Runs().FindEvents(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("FindEvents() error = %v", err)
	}
	if len(records) == 0 || records[len(records)-1].Event.Type != domain.EventScreenSet {
		t.Errorf("last journaled event = %v, want screen_set", records)
	}
	if last := screen.kelvins[len(screen.kelvins)-1]; last != 1000 {
		t.Errorf("final screen = %dK, want 1000K", last)
	}
}

func TestDayService_RunWithoutStorage(t *testing.T) {
	clock := newFakeClock(21, 59)
	service := NewDayService(clock, &fakeNotifier{}, &fakeScreen{}, &fakeConsole{}, zerolog.Nop())

	run, err := service.Run(context.Background(), newPlan("22:00"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.Status != domain.RunStatusCompleted {
		t.Errorf("Run() status = %v, want completed", run.Status)
	}
}

func TestDayService_Interrupted(t *testing.T) {
	store := setupTestStorage(t)
	clock := newFakeClock(12, 0)
	screen := &fakeScreen{}

	service := NewDayService(clock, &fakeNotifier{}, screen, &fakeConsole{}, zerolog.Nop())
	service.SetStorage(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := service.Run(ctx, newPlan("23:00"))
	if !errors.Is(err, domain.ErrInterrupted) {
		t.Fatalf("Run() error = %v, want ErrInterrupted", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want it to wrap context.Canceled", err)
	}
	if run.Status != domain.RunStatusInterrupted {
		t.Errorf("Run() status = %v, want interrupted", run.Status)
	}
	if len(screen.kelvins) != 1 || screen.kelvins[0] != domain.BaselineKelvin {
		t.Errorf("screen = %v, want the baseline restored", screen.kelvins)
	}

	saved, err := store.Runs().FindByID(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if saved.Status != domain.RunStatusInterrupted {
		t.Errorf("saved status = %v, want interrupted", saved.Status)
	}
}

func TestDayService_InterruptedNoRestore(t *testing.T) {
	screen := &fakeScreen{}
	service := NewDayService(newFakeClock(12, 0), &fakeNotifier{}, screen, &fakeConsole{}, zerolog.Nop())
	cfg := DefaultConfig()
	cfg.RestoreOnInterrupt = false
	service.SetConfig(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.Run(ctx, newPlan("23:00")); !errors.Is(err, domain.ErrInterrupted) {
		t.Fatalf("Run() error = %v, want ErrInterrupted", err)
	}
	if len(screen.kelvins) != 0 {
		t.Errorf("screen = %v, want untouched", screen.kelvins)
	}
}

func TestDayService_ActuatorMissing(t *testing.T) {
	screen := &fakeScreen{err: domain.ErrActuatorMissing}
	service := NewDayService(newFakeClock(21, 30), &fakeNotifier{}, screen, &fakeConsole{}, zerolog.Nop())

	run, err := service.Run(context.Background(), newPlan("23:00"))
	if !errors.Is(err, domain.ErrActuatorMissing) {
		t.Fatalf("Run() error = %v, want ErrActuatorMissing", err)
	}
	if errors.Is(err, domain.ErrInterrupted) {
		t.Errorf("Run() error = %v, want no interrupt", err)
	}
	if run.Status != domain.RunStatusInterrupted {
		t.Errorf("Run() status = %v, want interrupted", run.Status)
	}
}
