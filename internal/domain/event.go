package domain

import "time"

// EventType identifies what a scheduler event announces.
type EventType string

const (
	EventTaskStarted     EventType = "task_started"
	EventTaskEnded       EventType = "task_ended"
	EventScreenFlash     EventType = "screen_flash"
	EventFocusStarted    EventType = "focus_started"
	EventFocusProgress   EventType = "focus_progress"
	EventBreakStarted    EventType = "break_started"
	EventScreenRamp      EventType = "screen_ramp"
	EventBedtimeReminder EventType = "bedtime_reminder"
	EventBedtime         EventType = "bedtime"
	EventScreenSet       EventType = "screen_set"
)

// Event is one side effect decided by the scheduler for a tick.
type Event struct {
	Type    EventType
	At      TimeOfDay
	Task    string
	Summary string
	Body    string
	// Kelvin is the target temperature for screen events and the
	// baseline to restore for a flash.
	Kelvin int
	// Elapsed is set on focus progress events.
	Elapsed time.Duration
}

// Notifies reports whether the event becomes a desktop notification.
func (e Event) Notifies() bool {
	switch e.Type {
	case EventTaskStarted, EventTaskEnded, EventFocusStarted, EventBreakStarted,
		EventBedtimeReminder, EventBedtime:
		return true
	default:
		return false
	}
}

// SetsScreen reports whether the event changes the screen temperature.
func (e Event) SetsScreen() bool {
	return e.Type == EventScreenRamp || e.Type == EventScreenSet
}

// GetEventTypeLabel returns a human-readable label for the event type.
func GetEventTypeLabel(t EventType) string {
	switch t {
	case EventTaskStarted:
		return "Task started"
	case EventTaskEnded:
		return "Task over"
	case EventScreenFlash:
		return "Flash"
	case EventFocusStarted:
		return "Focus"
	case EventFocusProgress:
		return "Progress"
	case EventBreakStarted:
		return "Break"
	case EventScreenRamp:
		return "Screen ramp"
	case EventBedtimeReminder:
		return "Reminder"
	case EventBedtime:
		return "Bedtime"
	case EventScreenSet:
		return "Screen"
	default:
		return "Unknown"
	}
}
