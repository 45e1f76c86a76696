package domain

import (
	"fmt"
	"time"
)

// BaselineKelvin is the neutral screen temperature before any ramp.
const BaselineKelvin = 6500

// RampStep warms the screen to Kelvin once bedtime is at most
// MinutesBefore away.
type RampStep struct {
	MinutesBefore int
	Kelvin        int
}

// RampConfig describes how the screen warms toward bedtime.
type RampConfig struct {
	// Steps are ordered by strictly descending MinutesBefore.
	Steps          []RampStep
	ReminderBefore time.Duration
	FinalKelvin    int
	BaselineKelvin int
}

// DefaultRampConfig returns the 4000/3000/2000 K ramp at three hours, two
// and a half hours and two hours before bedtime, with a one hour reminder.
func DefaultRampConfig() RampConfig {
	return RampConfig{
		Steps: []RampStep{
			{MinutesBefore: 180, Kelvin: 4000},
			{MinutesBefore: 150, Kelvin: 3000},
			{MinutesBefore: 120, Kelvin: 2000},
		},
		ReminderBefore: time.Hour,
		FinalKelvin:    1000,
		BaselineKelvin: BaselineKelvin,
	}
}

// Validate checks step ordering and temperatures.
func (c RampConfig) Validate() error {
	for i, s := range c.Steps {
		if s.MinutesBefore <= 0 || s.MinutesBefore >= MinutesPerDay {
			return fmt.Errorf("%w: step %d minutes_before %d out of range", ErrInvalidRamp, i+1, s.MinutesBefore)
		}
		if s.Kelvin <= 0 {
			return fmt.Errorf("%w: step %d kelvin must be positive", ErrInvalidRamp, i+1)
		}
		if i > 0 && s.MinutesBefore >= c.Steps[i-1].MinutesBefore {
			return fmt.Errorf("%w: steps must have strictly descending minutes_before", ErrInvalidRamp)
		}
	}
	if c.ReminderBefore < 0 || c.ReminderBefore >= Day {
		return fmt.Errorf("%w: reminder_before %s out of range", ErrInvalidRamp, c.ReminderBefore)
	}
	if c.FinalKelvin <= 0 || c.BaselineKelvin <= 0 {
		return fmt.Errorf("%w: final and baseline kelvin must be positive", ErrInvalidRamp)
	}
	return nil
}

// FlashConfig describes the end-of-task screen flash.
type FlashConfig struct {
	Kelvin int
	Cycles int
	Phase  time.Duration
}

// DefaultFlashConfig returns four 400ms cycles of 1000 K.
func DefaultFlashConfig() FlashConfig {
	return FlashConfig{
		Kelvin: 1000,
		Cycles: 4,
		Phase:  200 * time.Millisecond,
	}
}
