// Package repository provides pgx-backed persistence for bulk validation
// runs. This is part of the bulkvalidate bounded context and contains only
// data-access logic.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Result is one classified row from a bulk validation run.
type Result struct {
	RawInput   string
	E164       *string
	Region     *string
	NumberType *string
	Valid      bool
	ErrorKind  *string
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// StartRun records the beginning of a bulk validation run over sourceObject
// and returns its id.
func (r *Repository) StartRun(ctx context.Context, sourceObject string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bulk_validation_runs (source_object)
		VALUES ($1)
		RETURNING id
	`, sourceObject).Scan(&id)
	return id, err
}

// FinishRun marks a run as complete.
func (r *Repository) FinishRun(ctx context.Context, runID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE bulk_validation_runs SET finished_at = now() WHERE id = $1
	`, runID)
	return err
}

// InsertResult persists one classified row of the run.
func (r *Repository) InsertResult(ctx context.Context, runID uuid.UUID, result Result) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bulk_validation_results (run_id, raw_input, e164, region, number_type, valid, error_kind)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, runID, result.RawInput, result.E164, result.Region, result.NumberType, result.Valid, result.ErrorKind)
	return err
}
