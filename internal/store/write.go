package store

import (
	"context"
	"fmt"

	"colorelic/internal/relic"
)

// Run is one solved parameter point of a scan.
type Run struct {
	ID         string
	Model      string
	Candidate  string
	Mass       float64
	Sommerfeld bool
	Result     relic.Result
}

// WriteRun inserts a run and its channel shares in a single transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: rewriting an existing run
// ID is silently ignored.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, model, candidate, mass, sommerfeld, xf, sigma_v, omega_h2)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Model,
		run.Candidate,
		run.Mass,
		run.Sommerfeld,
		run.Result.Xf,
		run.Result.SigmaV,
		run.Result.OmegaH2,
	)
	if err != nil {
		return fmt.Errorf("write run %s: %w", run.ID, err)
	}

	// Duplicate run: nothing inserted, keep the existing shares.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tx.Commit()
	}

	for i, ch := range run.Result.Channels {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO channel_shares (run_id, seq, label, share)
			VALUES (?, ?, ?, ?)
		`, run.ID, i, ch.Label, ch.Share)
		if err != nil {
			return fmt.Errorf("write channel share %d of run %s: %w", i, run.ID, err)
		}
	}

	return tx.Commit()
}
