package services

import (
	"fmt"
	"time"

	"github.com/xvierd/dusk/internal/domain"
)

func taskStartedEvent(now domain.TimeOfDay, task domain.Task) domain.Event {
	return domain.Event{
		Type:    domain.EventTaskStarted,
		At:      now,
		Task:    task.Name,
		Summary: fmt.Sprintf("Task started: %s", task.Name),
		Body:    fmt.Sprintf("Scheduled %s-%s.", task.Start, task.End),
	}
}

func taskEndedEvent(now domain.TimeOfDay, plan domain.Plan, i, totalPomodoros int) domain.Event {
	task := plan.Task(i)
	e := domain.Event{
		Type: domain.EventTaskEnded,
		At:   now,
		Task: task.Name,
	}
	if next, ok := plan.Next(i); ok {
		e.Summary = fmt.Sprintf("Task %s over; next is %s at %s", task.Name, next.Name, next.Start)
		e.Body = "Time for 15 minutes of workout or meditation."
		return e
	}
	e.Summary = fmt.Sprintf("Task %s over; no more tasks today", task.Name)
	e.Body = fmt.Sprintf("Number of today's pomodoros: %d", totalPomodoros)
	return e
}

func screenFlashEvent(now domain.TimeOfDay, task string, baseline int) domain.Event {
	return domain.Event{
		Type:    domain.EventScreenFlash,
		At:      now,
		Task:    task,
		Summary: fmt.Sprintf("Flashing screen for the end of %s", task),
		Kelvin:  baseline,
	}
}

func focusStartedEvent(now domain.TimeOfDay, p *domain.Pomodoro, focus time.Duration) domain.Event {
	return domain.Event{
		Type:    domain.EventFocusStarted,
		At:      now,
		Task:    p.Task,
		Summary: fmt.Sprintf("Pomodoro %d of task %s has begun", p.Count, p.Task),
		Body:    fmt.Sprintf("%d minutes of focused work starting now!", minutes(focus)),
	}
}

func focusProgressEvent(now domain.TimeOfDay, p *domain.Pomodoro, elapsed, focus time.Duration) domain.Event {
	return domain.Event{
		Type:    domain.EventFocusProgress,
		At:      now,
		Task:    p.Task,
		Summary: fmt.Sprintf("Pomodoro status: %d minutes of %d elapsed", minutes(elapsed), minutes(focus)),
		Elapsed: elapsed,
	}
}

func breakStartedEvent(now domain.TimeOfDay, task string, length time.Duration, long bool) domain.Event {
	e := domain.Event{
		Type: domain.EventBreakStarted,
		At:   now,
		Task: task,
	}
	if long {
		e.Summary = fmt.Sprintf("Pomodoro over! %d-minute long break", minutes(length))
		e.Body = "Move a little more, hydrate or meditate for a short time."
		return e
	}
	e.Summary = fmt.Sprintf("Pomodoro over! %d minutes of pause", minutes(length))
	e.Body = "Move a little bit, get some water..."
	return e
}

func screenRampEvent(now domain.TimeOfDay, step domain.RampStep) domain.Event {
	return domain.Event{
		Type:    domain.EventScreenRamp,
		At:      now,
		Summary: fmt.Sprintf("Warming screen to %dK, %d minutes before bedtime", step.Kelvin, step.MinutesBefore),
		Kelvin:  step.Kelvin,
	}
}

func bedtimeReminderEvent(now domain.TimeOfDay, before time.Duration) domain.Event {
	return domain.Event{
		Type:    domain.EventBedtimeReminder,
		At:      now,
		Summary: fmt.Sprintf("Bedtime in %s", humanMinutes(before)),
		Body:    "Finish up and start winding down.",
	}
}

func bedtimeEvent(now domain.TimeOfDay) domain.Event {
	return domain.Event{
		Type:    domain.EventBedtime,
		At:      now,
		Summary: "Go to sleep",
		Body:    "Your tomorrow-self will thank you.",
	}
}

func screenSetEvent(now domain.TimeOfDay, kelvin int) domain.Event {
	return domain.Event{
		Type:    domain.EventScreenSet,
		At:      now,
		Summary: fmt.Sprintf("Setting screen to %dK", kelvin),
		Kelvin:  kelvin,
	}
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}

// humanMinutes renders whole hours as "1 hour"/"2 hours" and anything else
// in minutes.
func humanMinutes(d time.Duration) string {
	m := minutes(d)
	switch {
	case m == 60:
		return "1 hour"
	case m > 0 && m%60 == 0:
		return fmt.Sprintf("%d hours", m/60)
	case m == 1:
		return "1 minute"
	default:
		return fmt.Sprintf("%d minutes", m)
	}
}
