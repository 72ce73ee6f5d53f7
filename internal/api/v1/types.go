package v1

import (
	"time"

	"github.com/vidkeep/vidkeep/internal/library"
)

// videoResponse is the API representation of a video.
type videoResponse struct {
	ID            int64     `json:"id"`
	Filename      string    `json:"filename"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Path          string    `json:"path"`
	SizeBytes     int64     `json:"size_bytes"`
	DurationSec   float64   `json:"duration_sec"`
	Width         int       `json:"width,omitempty"`
	Height        int       `json:"height,omitempty"`
	FPS           float64   `json:"fps,omitempty"`
	Codec         string    `json:"codec,omitempty"`
	Rating        int       `json:"rating"`
	Tags          []string  `json:"tags"`
	AddedAt       time.Time `json:"added_at"`
	ThumbnailPath string    `json:"thumbnail_path,omitempty"`
}

func videoToResponse(v *library.VideoRecord) videoResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return videoResponse{
		ID:            v.ID,
		Filename:      v.Filename,
		Title:         v.Title,
		Description:   v.Description,
		Path:          v.Path,
		SizeBytes:     v.SizeBytes,
		DurationSec:   v.DurationSec,
		Width:         v.Width,
		Height:        v.Height,
		FPS:           v.FPS,
		Codec:         v.Codec,
		Rating:        v.Rating,
		Tags:          tags,
		AddedAt:       v.AddedAt,
		ThumbnailPath: v.ThumbnailPath,
	}
}

// listVideosResponse is the response for GET /videos and GET /session/videos.
type listVideosResponse struct {
	Items  []videoResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

type updateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

type setRatingRequest struct {
	Rating int `json:"rating"`
}

type addTagRequest struct {
	Name string `json:"name"`
}

type renameTagRequest struct {
	NewName string `json:"new_name"`
}

type tagResponse struct {
	Name       string `json:"name"`
	VideoCount int    `json:"video_count"`
}

type listTagsResponse struct {
	Items []tagResponse `json:"items"`
}

type similarResponse struct {
	Items []similarMatch `json:"items"`
}

type similarMatch struct {
	Video videoResponse `json:"video"`
	Score float64       `json:"score"`
}

// sessionResponse is the response for GET /session.
type sessionResponse struct {
	Filter        filterResponse `json:"filter"`
	Sort          sortRequest    `json:"sort"`
	Mode          string         `json:"mode"`
	SelectedID    int64          `json:"selected_id"`
	SelectedIndex int            `json:"selected_index"`
	VisibleCount  int            `json:"visible_count"`
	TotalCount    int            `json:"total_count"`
}

type filterResponse struct {
	MinRating    int      `json:"min_rating"`
	RequiredTags []string `json:"required_tags"`
	SearchText   string   `json:"search_text"`
}

type setFilterRequest struct {
	MinRating    int      `json:"min_rating"`
	RequiredTags []string `json:"required_tags"`
	SearchText   string   `json:"search_text"`
}

type sortRequest struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

type setViewRequest struct {
	Mode string `json:"mode"`
}

type setSelectionRequest struct {
	Index int `json:"index"`
}

type navigateRequest struct {
	Direction string `json:"direction"`
	Columns   int    `json:"columns"`
}

// navigateResponse reports the selection after a cursor move.
type navigateResponse struct {
	Selected      *videoResponse `json:"selected"`
	SelectedIndex int            `json:"selected_index"`
}

// previewFrame is one chapter thumbnail pushed on the preview stream.
type previewFrame struct {
	Index        int     `json:"index"`
	Path         string  `json:"path"`
	TimestampSec float64 `json:"timestamp_sec"`
}

type EventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"event_type"`
	VideoID    int64  `json:"video_id"`
	OccurredAt string `json:"occurred_at"`
}

type listEventsResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
