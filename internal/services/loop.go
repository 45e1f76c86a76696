package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// Loop samples the clock at a fixed interval and feeds the scheduler.
type Loop struct {
	scheduler  *Scheduler
	dispatcher *Dispatcher
	clock      ports.Clock
	interval   time.Duration
	log        zerolog.Logger
}

// NewLoop creates a loop polling every interval.
func NewLoop(scheduler *Scheduler, dispatcher *Dispatcher, clock ports.Clock, interval time.Duration, log zerolog.Logger) *Loop {
	return &Loop{
		scheduler:  scheduler,
		dispatcher: dispatcher,
		clock:      clock,
		interval:   interval,
		log:        log,
	}
}

// Run ticks until bedtime, returning nil. It returns ctx's error when
// cancelled and any fatal dispatch error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		now := domain.TimeOfDayFrom(l.clock.Now())
		events, done := l.scheduler.Step(now)
		l.log.Debug().Stringer("now", now).Int("events", len(events)).Msg("tick")

		if err := l.dispatcher.Dispatch(ctx, events); err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := l.clock.Sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}
