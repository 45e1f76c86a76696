package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// DayService runs a plan from now until bedtime.
type DayService struct {
	clock    ports.Clock
	notifier ports.Notifier
	screen   ports.ScreenTint
	console  ports.Console
	storage  ports.Storage
	config   Config
	log      zerolog.Logger
}

// NewDayService creates a day service with the default configuration.
func NewDayService(clock ports.Clock, notifier ports.Notifier, screen ports.ScreenTint, console ports.Console, log zerolog.Logger) *DayService {
	return &DayService{
		clock:    clock,
		notifier: notifier,
		screen:   screen,
		console:  console,
		config:   DefaultConfig(),
		log:      log,
	}
}

// SetConfig updates the schedule configuration.
func (s *DayService) SetConfig(config Config) {
	s.config = config
}

// SetStorage enables the run journal. A nil storage disables it.
func (s *DayService) SetStorage(storage ports.Storage) {
	s.storage = storage
}

// Run schedules plan until bedtime and returns the finished run. When ctx
// is cancelled first the run is returned together with an error wrapping
// domain.ErrInterrupted.
func (s *DayService) Run(ctx context.Context, plan domain.Plan) (*domain.Run, error) {
	run := domain.NewRun(plan, s.clock.Now())

	scheduler := NewScheduler(plan, s.config)
	dispatcher := NewDispatcher(s.notifier, s.screen, s.console, s.clock, s.config.Flash, s.log)

	repo := s.runs()
	if repo != nil {
		// The journal is best effort; a failing database never stops a run.
		if err := repo.Save(ctx, run); err != nil {
			s.log.Warn().Err(err).Msg("failed to save run, journal disabled")
			repo = nil
		} else {
			dispatcher.SetJournal(repo, run.ID)
		}
	}

	s.log.Info().
		Str("run", domain.ShortID(run.ID)).
		Stringer("bedtime", plan.Bedtime()).
		Int("tasks", plan.Len()).
		Msg("run started")

	loopErr := NewLoop(scheduler, dispatcher, s.clock, s.config.PollInterval, s.log).Run(ctx)
	total := scheduler.State().TotalPomodoros

	switch {
	case loopErr == nil:
		run.Complete(total, s.clock.Now())
	case ctx.Err() != nil:
		if s.config.RestoreOnInterrupt {
			if err := s.screen.Set(s.config.Ramp.BaselineKelvin); err != nil {
				s.log.Warn().Err(err).Msg("failed to restore screen")
			}
		}
		run.Interrupt(total, s.clock.Now())
		loopErr = fmt.Errorf("%w: %w", domain.ErrInterrupted, loopErr)
	default:
		run.Interrupt(total, s.clock.Now())
	}

	// The update must land even when ctx is already cancelled.
	if repo != nil {
		if err := repo.Update(context.WithoutCancel(ctx), run); err != nil {
			s.log.Warn().Err(err).Msg("failed to update run")
		}
	}

	if loopErr != nil {
		if !errors.Is(loopErr, domain.ErrInterrupted) {
			s.log.Error().Err(loopErr).Msg("run aborted")
		}
		return run, loopErr
	}

	s.log.Info().Int("pomodoros", total).Msg("run completed")
	return run, nil
}

func (s *DayService) runs() ports.RunRepository {
	if s.storage == nil {
		return nil
	}
	return s.storage.Runs()
}
