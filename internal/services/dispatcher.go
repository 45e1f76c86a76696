package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// Dispatcher carries out the side effects of scheduler events.
type Dispatcher struct {
	notifier ports.Notifier
	screen   ports.ScreenTint
	console  ports.Console
	clock    ports.Clock
	flash    domain.FlashConfig
	log      zerolog.Logger

	journal ports.RunRepository
	runID   string
}

// NewDispatcher creates a dispatcher. notifier may be nil when
// notifications are disabled.
func NewDispatcher(notifier ports.Notifier, screen ports.ScreenTint, console ports.Console, clock ports.Clock, flash domain.FlashConfig, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		screen:   screen,
		console:  console,
		clock:    clock,
		flash:    flash,
		log:      log,
	}
}

// SetJournal records every dispatched event (except progress lines) under
// runID in repo.
func (d *Dispatcher) SetJournal(repo ports.RunRepository, runID string) {
	d.journal = repo
	d.runID = runID
}

// Dispatch performs the effects of events in order. Only a missing screen
// tool is fatal; notification and journal failures are logged.
func (d *Dispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	for _, e := range events {
		d.console.Event(e)

		switch {
		case e.Type == domain.EventScreenFlash:
			if err := d.flashScreen(ctx, e.Kelvin); err != nil {
				return err
			}
		case e.SetsScreen():
			if err := d.setScreen(e.Kelvin); err != nil {
				return err
			}
		}

		if e.Notifies() && d.notifier != nil {
			if err := d.notifier.Notify(e.Summary, e.Body); err != nil {
				d.log.Warn().Err(err).Str("event", string(e.Type)).Msg("notification failed")
			}
		}

		d.record(ctx, e)
	}
	return nil
}

// flashScreen alternates between the flash temperature and baseline.
func (d *Dispatcher) flashScreen(ctx context.Context, baseline int) error {
	for i := 0; i < d.flash.Cycles; i++ {
		if err := d.setScreen(d.flash.Kelvin); err != nil {
			return err
		}
		if err := d.clock.Sleep(ctx, d.flash.Phase); err != nil {
			return err
		}
		if err := d.setScreen(baseline); err != nil {
			return err
		}
		if err := d.clock.Sleep(ctx, d.flash.Phase); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) setScreen(kelvin int) error {
	err := d.screen.Set(kelvin)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrActuatorMissing) {
		return fmt.Errorf("failed to set screen to %dK: %w", kelvin, err)
	}
	d.log.Warn().Err(err).Int("kelvin", kelvin).Msg("screen change failed")
	return nil
}

func (d *Dispatcher) record(ctx context.Context, e domain.Event) {
	if d.journal == nil || e.Type == domain.EventFocusProgress {
		return
	}
	record := domain.EventRecord{
		RunID:      d.runID,
		RecordedAt: d.clock.Now().Truncate(time.Second),
		Event:      e,
	}
	if err := d.journal.RecordEvent(ctx, record); err != nil {
		d.log.Warn().Err(err).Str("event", string(e.Type)).Msg("failed to record event")
	}
}
