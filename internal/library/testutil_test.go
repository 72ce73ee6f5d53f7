package library

import (
	"database/sql"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

func createTestVideo(t *testing.T, store *Store, path string, tags ...string) *VideoRecord {
	t.Helper()
	v := &VideoRecord{
		Filename:    "holiday.mkv",
		Title:       "Holiday 2019",
		Description: "Beach trip",
		Path:        path,
		SizeBytes:   1572864000,
		DurationSec: 5400,
		Width:       1920,
		Height:      1080,
		FPS:         29.97,
		Codec:       "h264",
		Tags:        tags,
	}
	if err := store.AddVideo(v); err != nil {
		t.Fatalf("create test video: %v", err)
	}
	return v
}

func assertAddedRecently(t *testing.T, added, before, after time.Time) {
	t.Helper()
	if added.Before(before) || added.After(after) {
		t.Errorf("AddedAt %v not in expected range [%v, %v]", added, before, after)
	}
}
