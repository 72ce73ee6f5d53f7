// Package library manages the video catalog: records, tags, ratings, and
// chapter thumbnails.
package library

import (
	"slices"
	"time"
)

// ChapterThumb is one preview frame extracted from a video.
type ChapterThumb struct {
	Path         string
	TimestampSec float64
}

// VideoRecord represents a single video in the catalog.
// ID and Path are immutable once the record exists; everything else may be
// edited by the user.
type VideoRecord struct {
	ID            int64
	Filename      string
	Title         string
	Description   string
	Path          string
	SizeBytes     int64
	DurationSec   float64
	Width         int
	Height        int
	FPS           float64
	Codec         string
	Rating        int // 0-5, 0 = unrated
	Tags          []string
	AddedAt       time.Time
	ThumbnailPath string
	Chapters      []ChapterThumb
}

// HasTag reports whether the video carries the given tag.
func (v *VideoRecord) HasTag(name string) bool {
	return slices.Contains(v.Tags, name)
}

// Clone returns a deep copy of the record.
func (v *VideoRecord) Clone() *VideoRecord {
	c := *v
	c.Tags = slices.Clone(v.Tags)
	c.Chapters = slices.Clone(v.Chapters)
	return &c
}

// TagRecord is a tag known to the catalog, with its current reference count.
type TagRecord struct {
	Name       string
	VideoCount int
}
