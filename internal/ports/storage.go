// Package ports defines the interfaces (driven and driving ports)
// for the Dusk application following hexagonal architecture principles.
// These interfaces define the contracts between the scheduler and the
// notifier, screen, clock and journal infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/dusk/internal/domain"
)

// RunRepository defines the interface for run journal persistence.
// This is a driven port (implemented by adapters).
type RunRepository interface {
	// Save persists a new run.
	Save(ctx context.Context, run *domain.Run) error

	// Update modifies an existing run.
	Update(ctx context.Context, run *domain.Run) error

	// FindByID retrieves a run by its full identifier or a unique prefix.
	FindByID(ctx context.Context, id string) (*domain.Run, error)

	// FindRecent returns the most recent runs, newest first.
	FindRecent(ctx context.Context, limit int) ([]*domain.Run, error)

	// RecordEvent appends a dispatched event to a run.
	RecordEvent(ctx context.Context, record domain.EventRecord) error

	// FindEvents returns the events of a run in dispatch order.
	FindEvents(ctx context.Context, runID string) ([]domain.EventRecord, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Runs provides access to the run journal.
	Runs() RunRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
