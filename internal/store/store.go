// Package store defines resume record persistence and provides the JSON
// directory implementation used by default. The db package provides the
// PostgreSQL implementation of the same interface.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrNotFound is returned when no stored resume has the requested ID.
var ErrNotFound = errors.New("resume not found")

// StoredResume couples a parsed record with its upload identity and
// ingestion metadata.
type StoredResume struct {
	ID         uuid.UUID           `json:"id"`
	Filename   string              `json:"filename"`
	UploadedAt time.Time           `json:"uploaded_at"`
	Metadata   *ingestion.Metadata `json:"metadata,omitempty"`
	Record     *types.ResumeRecord `json:"parsed_data"`
}

// Store persists parsed resumes.
type Store interface {
	// Save stores a resume, overwriting any existing one with the same ID.
	Save(ctx context.Context, resume *StoredResume) error
	// Get returns the resume with the given ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*StoredResume, error)
	// List returns all stored resumes ordered by upload time, newest first.
	List(ctx context.Context) ([]*StoredResume, error)
	// Delete removes the resume with the given ID, or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
	// Close releases resources held by the store.
	Close()
}

// NewStoredResume builds a StoredResume with a fresh ID and upload time.
func NewStoredResume(filename string, meta *ingestion.Metadata, rec *types.ResumeRecord) *StoredResume {
	return &StoredResume{
		ID:         uuid.New(),
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
		Metadata:   meta,
		Record:     rec,
	}
}
