package events

import "github.com/vidkeep/vidkeep/internal/library"

// Event type identifiers.
const (
	EventVideoAdded        = "video.added"
	EventVideoRemoved      = "video.removed"
	EventScanProgress      = "scan.progress"
	EventThumbnailProgress = "thumbnail.progress"
)

// VideoAdded is emitted when a video appears in the catalog from outside
// (watcher pickup or API insert). It carries the full record so subscribers
// don't have to read it back.
type VideoAdded struct {
	BaseEvent
	Video *library.VideoRecord `json:"video"`
}

// NewVideoAdded builds a VideoAdded event for the given record.
func NewVideoAdded(v *library.VideoRecord) *VideoAdded {
	return &VideoAdded{BaseEvent: NewBaseEvent(EventVideoAdded, v.ID), Video: v}
}

// VideoRemoved is emitted when a video disappears from the catalog.
type VideoRemoved struct {
	BaseEvent
	Path string `json:"path"`
}

// NewVideoRemoved builds a VideoRemoved event.
func NewVideoRemoved(videoID int64, path string) *VideoRemoved {
	return &VideoRemoved{BaseEvent: NewBaseEvent(EventVideoRemoved, videoID), Path: path}
}

// ScanProgress reports progress of a library directory scan.
// UI-only: the state engine ignores it.
type ScanProgress struct {
	BaseEvent
	Scanned int    `json:"scanned"`
	Total   int    `json:"total"`
	Path    string `json:"path"`
}

// NewScanProgress builds a ScanProgress event.
func NewScanProgress(scanned, total int, path string) *ScanProgress {
	return &ScanProgress{BaseEvent: NewBaseEvent(EventScanProgress, 0), Scanned: scanned, Total: total, Path: path}
}

// ThumbnailProgress reports thumbnail extraction progress for a video.
// UI-only: the state engine ignores it.
type ThumbnailProgress struct {
	BaseEvent
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// NewThumbnailProgress builds a ThumbnailProgress event.
func NewThumbnailProgress(videoID int64, completed, total int) *ThumbnailProgress {
	return &ThumbnailProgress{BaseEvent: NewBaseEvent(EventThumbnailProgress, videoID), Completed: completed, Total: total}
}
