package session

import (
	"fmt"
	"time"

	"github.com/vidkeep/vidkeep/internal/library"
)

// vid builds a test record. AddedAt is derived from the id so "added" sorts
// follow id order.
func vid(id int64, title string, rating int, tags ...string) *library.VideoRecord {
	return &library.VideoRecord{
		ID:          id,
		Filename:    fmt.Sprintf("video%03d.mkv", id),
		Title:       title,
		Path:        fmt.Sprintf("/videos/video%03d.mkv", id),
		SizeBytes:   id * 1000,
		DurationSec: float64(id * 60),
		Rating:      rating,
		Tags:        tags,
		AddedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

func stateWith(videos ...*library.VideoRecord) *State {
	st := newState()
	for _, v := range videos {
		st.canonical[v.ID] = v
		st.registerTags(v.Tags)
	}
	st.recompute()
	return st
}

func visibleIDs(st *State) []int64 {
	ids := make([]int64, len(st.visible))
	for i, v := range st.visible {
		ids[i] = v.ID
	}
	return ids
}
