package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Dir stores each resume as a pretty-printed JSON file named <id>.json in a
// single directory. Writes go through a temp file and rename so a crashed
// process never leaves a half-written record behind.
type Dir struct {
	path string
	mu   sync.RWMutex
}

// NewDir opens a directory store, creating the directory if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory records are stored in.
func (d *Dir) Path() string { return d.path }

func (d *Dir) filePath(id uuid.UUID) string {
	return filepath.Join(d.path, id.String()+".json")
}

// Save stores a resume, overwriting any existing one with the same ID.
func (d *Dir) Save(_ context.Context, resume *StoredResume) error {
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tmp, err := os.CreateTemp(d.path, "resume-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.filePath(resume.ID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

// Get returns the resume with the given ID, or ErrNotFound.
func (d *Dir) Get(_ context.Context, id uuid.UUID) (*StoredResume, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	data, err := os.ReadFile(d.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	var resume StoredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}
	return &resume, nil
}

// List returns all stored resumes ordered by upload time, newest first.
// Files that fail to decode are skipped rather than failing the listing.
func (d *Dir) List(_ context.Context) ([]*StoredResume, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var resumes []*StoredResume
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(d.path, entry.Name()))
		if err != nil {
			continue
		}
		var resume StoredResume
		if err := json.Unmarshal(data, &resume); err != nil {
			continue
		}
		resumes = append(resumes, &resume)
	}

	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].UploadedAt.After(resumes[j].UploadedAt)
	})
	return resumes, nil
}

// Delete removes the resume with the given ID, or returns ErrNotFound.
func (d *Dir) Delete(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.Remove(d.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// Close is a no-op for the directory store.
func (d *Dir) Close() {}
