package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"colorelic/internal/relic"
)

// ErrRunNotFound is returned when no run carries the requested ID.
var ErrRunNotFound = errors.New("run not found")

// ReadRun loads one run with its channel shares.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, model, candidate, mass, sommerfeld, xf, sigma_v, omega_h2
		FROM runs WHERE id = ?
	`, id).Scan(
		&run.ID,
		&run.Model,
		&run.Candidate,
		&run.Mass,
		&run.Sommerfeld,
		&run.Result.Xf,
		&run.Result.SigmaV,
		&run.Result.OmegaH2,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}

	run.Result.Channels, err = s.readShares(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// ReadRuns loads all runs ordered by ascending mass, shares included.
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, model, candidate, mass, sommerfeld, xf, sigma_v, omega_h2
		FROM runs ORDER BY mass, id
	`)
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Model,
			&run.Candidate,
			&run.Mass,
			&run.Sommerfeld,
			&run.Result.Xf,
			&run.Result.SigmaV,
			&run.Result.OmegaH2,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}

	for i := range runs {
		runs[i].Result.Channels, err = s.readShares(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) readShares(ctx context.Context, runID string) ([]relic.ChannelShare, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, share FROM channel_shares
		WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read shares of run %s: %w", runID, err)
	}
	defer rows.Close()

	var shares []relic.ChannelShare
	for rows.Next() {
		var ch relic.ChannelShare
		if err := rows.Scan(&ch.Label, &ch.Share); err != nil {
			return nil, fmt.Errorf("scan share row: %w", err)
		}
		shares = append(shares, ch)
	}
	return shares, rows.Err()
}
