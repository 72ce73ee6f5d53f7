// Package events provides the pub/sub bus carrying library notifications.
package events

import "time"

// Event is the base interface all events implement.
type Event interface {
	EventType() string
	VideoID() int64 // 0 for events not tied to a single video
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	ID        int64     `json:"video_id"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) VideoID() int64        { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent creates a BaseEvent with the current timestamp.
func NewBaseEvent(eventType string, videoID int64) BaseEvent {
	return BaseEvent{
		Type:      eventType,
		ID:        videoID,
		Timestamp: time.Now(),
	}
}
