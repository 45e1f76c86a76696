package services

import (
	"time"

	"github.com/xvierd/dusk/internal/domain"
)

// maxForwardTick bounds how far the clock may move between two ticks and
// still count as moving forward. Larger gaps are treated as the clock
// stepping backwards.
const maxForwardTick = 12 * time.Hour

// BedtimeRamp warms the screen toward bedtime and ends the run.
type BedtimeRamp struct {
	config domain.RampConfig
}

// NewBedtimeRamp creates a ramp with the given steps.
func NewBedtimeRamp(config domain.RampConfig) *BedtimeRamp {
	return &BedtimeRamp{config: config}
}

// Step fires the ramp steps, the reminder and the bedtime transition due
// at now. It reports true once bedtime is reached.
func (r *BedtimeRamp) Step(now, bedtime domain.TimeOfDay, state *domain.RunState) ([]domain.Event, bool) {
	var events []domain.Event
	m := minutes(domain.DurationFrom(now, bedtime))

	for k, step := range r.config.Steps {
		lower := -1
		if k+1 < len(r.config.Steps) {
			lower = r.config.Steps[k+1].MinutesBefore
		}
		if m <= step.MinutesBefore && m > lower && !state.Ramp.Done[k] {
			state.Ramp.Done[k] = true
			state.ScreenKelvin = step.Kelvin
			events = append(events, screenRampEvent(now, step))
		}
	}

	if r.config.ReminderBefore > 0 && m <= minutes(r.config.ReminderBefore) && !state.Ramp.ReminderSent {
		state.Ramp.ReminderSent = true
		events = append(events, bedtimeReminderEvent(now, r.config.ReminderBefore))
	}

	if !reachedBedtime(state.LastTick, now, bedtime) {
		return events, false
	}

	state.ScreenKelvin = r.config.FinalKelvin
	state.Finished = true
	events = append(events, bedtimeEvent(now), screenSetEvent(now, r.config.FinalKelvin))
	return events, true
}

// reachedBedtime reports whether bedtime is now, or lies in (prev, now]
// going forward around the clock. With no previous tick, bedtime counts as
// reached when it passed earlier the same day, less than maxForwardTick ago.
func reachedBedtime(prev *domain.TimeOfDay, now, bedtime domain.TimeOfDay) bool {
	if now == bedtime {
		return true
	}
	if prev == nil {
		return now > bedtime && domain.Elapsed(bedtime, now) < maxForwardTick
	}
	if *prev == now {
		return false
	}
	gap := domain.Elapsed(*prev, now)
	if gap > maxForwardTick {
		return false
	}
	toBed := domain.Elapsed(*prev, bedtime)
	return toBed > 0 && toBed <= gap
}
