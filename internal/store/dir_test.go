package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func testResume(filename string, uploadedAt time.Time) *StoredResume {
	return &StoredResume{
		ID:         uuid.New(),
		Filename:   filename,
		UploadedAt: uploadedAt,
		Record: &types.ResumeRecord{
			Skills: []string{"Python"},
		},
	}
}

func TestDirSaveGet(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	resume := testResume("a.txt", time.Now().UTC())

	require.NoError(t, d.Save(ctx, resume))

	got, err := d.Get(ctx, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, resume.ID, got.ID)
	assert.Equal(t, "a.txt", got.Filename)
	assert.Equal(t, []string{"Python"}, got.Record.Skills)
}

func TestDirGetMissing(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	_, err = d.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSaveOverwrites(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	resume := testResume("a.txt", time.Now().UTC())
	require.NoError(t, d.Save(ctx, resume))

	resume.Filename = "renamed.txt"
	require.NoError(t, d.Save(ctx, resume))

	got, err := d.Get(ctx, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed.txt", got.Filename)

	all, err := d.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDirListNewestFirst(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	older := testResume("older.txt", now.Add(-time.Hour))
	newer := testResume("newer.txt", now)
	require.NoError(t, d.Save(ctx, older))
	require.NoError(t, d.Save(ctx, newer))

	all, err := d.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer.txt", all[0].Filename)
	assert.Equal(t, "older.txt", all[1].Filename)
}

func TestDirDelete(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	resume := testResume("a.txt", time.Now().UTC())
	require.NoError(t, d.Save(ctx, resume))

	require.NoError(t, d.Delete(ctx, resume.ID))
	_, err = d.Get(ctx, resume.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, d.Delete(ctx, resume.ID), ErrNotFound)
}

func TestNewStoredResume(t *testing.T) {
	rec := &types.ResumeRecord{Skills: []string{"Go"}}
	resume := NewStoredResume("cv.txt", nil, rec)

	assert.NotEqual(t, uuid.Nil, resume.ID)
	assert.Equal(t, "cv.txt", resume.Filename)
	assert.WithinDuration(t, time.Now().UTC(), resume.UploadedAt, time.Minute)
	assert.Same(t, rec, resume.Record)
}
