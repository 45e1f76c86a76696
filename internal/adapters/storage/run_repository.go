package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// runRepository implements ports.RunRepository using SQLite.
type runRepository struct {
	db *sql.DB
}

// newRunRepository creates a new run repository.
func newRunRepository(db *sql.DB) ports.RunRepository {
	return &runRepository{db: db}
}

const runColumns = `id, started_at, finished_at, bedtime, task_count, task_names, pomodoros, status`

// Save persists a run to storage.
func (r *runRepository) Save(ctx context.Context, run *domain.Run) error {
	query := `
		INSERT INTO runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	names, err := json.Marshal(run.TaskNames)
	if err != nil {
		return fmt.Errorf("failed to encode task names: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.Bedtime.String(),
		run.TaskCount,
		string(names),
		run.Pomodoros,
		string(run.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// Update records how a run finished.
func (r *runRepository) Update(ctx context.Context, run *domain.Run) error {
	query := `
		UPDATE runs
		SET finished_at = ?, pomodoros = ?, status = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		run.FinishedAt,
		run.Pomodoros,
		string(run.Status),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
	}

	return nil
}

// FindByID retrieves a run by its full ID or by a prefix matching exactly
// one run.
func (r *runRepository) FindByID(ctx context.Context, id string) (*domain.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrRunNotFound
	}

	query := `
		SELECT ` + runColumns + `
		FROM runs
		WHERE id = ? OR id LIKE ? || '%'
		ORDER BY started_at DESC
		LIMIT 2
	`

	rows, err := r.db.QueryContext(ctx, query, id, escapeLike(id))
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer func() { _ = rows.Close() }()

	runs, err := r.scanRuns(rows)
	if err != nil {
		return nil, err
	}

	switch len(runs) {
	case 0:
		return nil, domain.ErrRunNotFound
	case 1:
		return runs[0], nil
	default:
		for _, run := range runs {
			if run.ID == id {
				return run, nil
			}
		}
		return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
	}
}

// FindRecent returns the newest runs first.
func (r *runRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `
		SELECT ` + runColumns + `
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return r.scanRuns(rows)
}

// RecordEvent appends an event to a run.
func (r *runRepository) RecordEvent(ctx context.Context, record domain.EventRecord) error {
	query := `
		INSERT INTO events (run_id, recorded_at, type, at, task, summary, body, kelvin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	e := record.Event
	_, err := r.db.ExecContext(ctx, query,
		record.RunID,
		record.RecordedAt,
		string(e.Type),
		e.At.String(),
		e.Task,
		e.Summary,
		e.Body,
		e.Kelvin,
	)
	if isForeignKeyError(err) {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, record.RunID)
	}
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	return nil
}

// FindEvents returns the events of a run in the order they were recorded.
func (r *runRepository) FindEvents(ctx context.Context, runID string) ([]domain.EventRecord, error) {
	query := `
		SELECT run_id, recorded_at, type, at, task, summary, body, kelvin
		FROM events
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.EventRecord
	for rows.Next() {
		var (
			record        domain.EventRecord
			eventType, at string
			task, body    sql.NullString
			kelvin        sql.NullInt64
		)
		if err := rows.Scan(&record.RunID, &record.RecordedAt, &eventType, &at, &task,
			&record.Event.Summary, &body, &kelvin); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		tod, err := domain.ParseTimeOfDay(at)
		if err != nil {
			return nil, fmt.Errorf("corrupt event time %q: %w", at, err)
		}
		record.Event.Type = domain.EventType(eventType)
		record.Event.At = tod
		record.Event.Task = task.String
		record.Event.Body = body.String
		record.Event.Kelvin = int(kelvin.Int64)
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *runRepository) scanRuns(rows *sql.Rows) ([]*domain.Run, error) {
	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.Run, error) {
	var (
		run        domain.Run
		finishedAt sql.NullTime
		bedtime    string
		names      sql.NullString
		status     string
	)

	err := row.Scan(
		&run.ID,
		&run.StartedAt,
		&finishedAt,
		&bedtime,
		&run.TaskCount,
		&names,
		&run.Pomodoros,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	tod, err := domain.ParseTimeOfDay(bedtime)
	if err != nil {
		return nil, fmt.Errorf("corrupt bedtime %q: %w", bedtime, err)
	}
	run.Bedtime = tod
	run.Status = domain.RunStatus(status)

	if finishedAt.Valid {
		t := finishedAt.Time.Local()
		run.FinishedAt = &t
	}
	run.StartedAt = run.StartedAt.Local()

	if names.Valid && names.String != "" {
		if err := json.Unmarshal([]byte(names.String), &run.TaskNames); err != nil {
			return nil, fmt.Errorf("corrupt task names: %w", err)
		}
	}

	return &run, nil
}

// escapeLike strips LIKE wildcards from a user-supplied prefix.
func escapeLike(s string) string {
	r := strings.NewReplacer("%", "", "_", "")
	return r.Replace(s)
}
