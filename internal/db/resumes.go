package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// Save stores a resume, overwriting any existing row with the same ID.
func (db *DB) Save(ctx context.Context, resume *store.StoredResume) error {
	recordJSON, err := json.Marshal(resume.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	var metaJSON []byte
	if resume.Metadata != nil {
		metaJSON, err = json.Marshal(resume.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, filename, uploaded_at, metadata, record)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET filename = $2, uploaded_at = $3, metadata = $4, record = $5`,
		resume.ID, resume.Filename, resume.UploadedAt, metaJSON, recordJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// Get returns the resume with the given ID, or store.ErrNotFound.
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*store.StoredResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, filename, uploaded_at, metadata, record FROM resumes WHERE id = $1`, id)

	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// List returns all stored resumes ordered by upload time, newest first.
func (db *DB) List(ctx context.Context) ([]*store.StoredResume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, uploaded_at, metadata, record FROM resumes ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*store.StoredResume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// Delete removes the resume with the given ID, or returns store.ErrNotFound.
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// scanResume reads one resumes row into a StoredResume.
func scanResume(row pgx.Row) (*store.StoredResume, error) {
	var (
		resume     store.StoredResume
		uploadedAt time.Time
		metaJSON   []byte
		recordJSON []byte
	)
	if err := row.Scan(&resume.ID, &resume.Filename, &uploadedAt, &metaJSON, &recordJSON); err != nil {
		return nil, err
	}
	resume.UploadedAt = uploadedAt

	if len(metaJSON) > 0 {
		var meta ingestion.Metadata
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
		resume.Metadata = &meta
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(recordJSON, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	resume.Record = &rec

	return &resume, nil
}
