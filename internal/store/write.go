package store

import (
	"context"
	"fmt"
)

// RecordRun inserts a run and its events in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - recording the same
// run twice leaves the first copy untouched.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	errsJSON, err := marshalErrors(run.Errors)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, started_at, pass, errors)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Scenario,
		run.StartedAt,
		run.Pass,
		errsJSON,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if inserted == 0 {
		return nil
	}

	for _, e := range run.Events {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_events
			(run_id, seq, case_name, codec, op, input, input_kind, output, error, message)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			e.Seq,
			e.Case,
			e.Codec,
			e.Op,
			e.Input,
			e.InputKind,
			e.Output,
			e.Error,
			e.Message,
		)
		if err != nil {
			return fmt.Errorf("record run event %d: %w", e.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run: commit: %w", err)
	}
	return nil
}
