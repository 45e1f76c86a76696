package ports

import "github.com/xvierd/dusk/internal/domain"

// Notifier shows desktop notifications.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// Notify shows a persistent notification. Callers treat errors as
	// non-fatal.
	Notify(summary, body string) error
}

// ScreenTint sets the display color temperature.
// This is a driven port (implemented by adapters).
type ScreenTint interface {
	// Set requests the given temperature in Kelvin. It does not wait for
	// the change to be applied.
	Set(kelvin int) error
}

// Console prints human-readable progress to the user.
// This is a driven port (implemented by adapters).
type Console interface {
	// Event prints a line describing a dispatched event.
	Event(e domain.Event)

	// Info prints a free-form status line.
	Info(message string)
}
