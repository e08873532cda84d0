package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingestion_store.go -package=mocks helpdesk-ai/internal/storage IngestionStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// IngestionStore defines the interface for ingestion run records.
type IngestionStore interface {
	// RecordRun inserts a completed ingestion run. run.ID must be set (UUID).
	RecordRun(ctx context.Context, run *IngestionRun) error
	// LatestRun returns the most recent run for a collection.
	// Returns ErrNotFound if the collection has never been ingested.
	LatestRun(ctx context.Context, collection string) (*IngestionRun, error)
}

// IngestionRepo provides methods for ingestion run records.
// It implements the IngestionStore interface.
type IngestionRepo struct {
	db *sql.DB
}

// NewIngestionRepo creates a new IngestionRepo.
func NewIngestionRepo(db *sql.DB) *IngestionRepo {
	return &IngestionRepo{db: db}
}

// RecordRun inserts a completed ingestion run.
func (r *IngestionRepo) RecordRun(ctx context.Context, run *IngestionRun) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ingestion_runs (id, source_path, source_hash, collection, chunk_count, ingested_at) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.SourcePath, run.SourceHash, run.Collection, run.ChunkCount, run.IngestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ingestion run: %w", err)
	}
	return nil
}

// LatestRun returns the most recent run for a collection.
func (r *IngestionRepo) LatestRun(ctx context.Context, collection string) (*IngestionRun, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, source_path, source_hash, collection, chunk_count, ingested_at FROM ingestion_runs WHERE collection = ? ORDER BY ingested_at DESC, rowid DESC LIMIT 1",
		collection,
	)

	var run IngestionRun
	err := row.Scan(&run.ID, &run.SourcePath, &run.SourceHash, &run.Collection, &run.ChunkCount, &run.IngestedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ingestion run: %w", err)
	}
	return &run, nil
}
