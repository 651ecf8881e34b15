package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned by ReadRun when no run has the given ID.
var ErrRunNotFound = errors.New("run not found")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ListRuns returns recorded runs, most recent first, without events.
// An empty scenario matches every scenario; limit <= 0 means no limit.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, scenario string, limit int) ([]Run, error) {
	query := `
		SELECT id, scenario, started_at, pass, errors
		FROM runs
		WHERE (? = '' OR scenario = ?)
		ORDER BY seq DESC
	`
	args := []any{scenario, scenario}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a run with its events in trace order.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, started_at, pass, errors
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	events, err := s.readEvents(ctx, id)
	if err != nil {
		return Run{}, err
	}
	run.Events = events

	return run, nil
}

func (s *Store) readEvents(ctx context.Context, runID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, case_name, codec, op, input, input_kind, output, error, message
		FROM run_events
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.Case, &e.Codec, &e.Op, &e.Input, &e.InputKind, &e.Output, &e.Error, &e.Message); err != nil {
			return nil, fmt.Errorf("scan run event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run events: %w", err)
	}

	return events, nil
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var errsJSON string
	if err := row.Scan(&run.ID, &run.Scenario, &run.StartedAt, &run.Pass, &errsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	errs, err := unmarshalErrors(errsJSON)
	if err != nil {
		return Run{}, err
	}
	run.Errors = errs

	return run, nil
}
