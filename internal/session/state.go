// Package session holds the library browsing state: the canonical record set,
// the derived filtered+sorted visible sequence, and the selection cursor. All
// derived state is recomputed from canonical, never patched, so the two cannot
// diverge.
package session

import (
	"slices"

	"github.com/vidkeep/vidkeep/internal/library"
)

// ViewMode selects 1-D (list) or 2-D (grid) navigation.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode validates a view mode string.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), true
	}
	return "", false
}

// SortField names a sortable video attribute.
type SortField string

const (
	SortTitle    SortField = "title"
	SortFilename SortField = "filename"
	SortAdded    SortField = "added"
	SortRating   SortField = "rating"
	SortSize     SortField = "size"
	SortDuration SortField = "duration"
)

// ParseSortField validates a sort field string.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortTitle, SortFilename, SortAdded, SortRating, SortSize, SortDuration:
		return SortField(s), true
	}
	return "", false
}

// Sort specifies the ordering of the visible sequence.
type Sort struct {
	Field SortField
	Desc  bool
}

// Filter specifies which videos appear in the visible sequence. All
// predicates combine with AND.
type Filter struct {
	MinRating    int // 0 = no rating constraint
	RequiredTags map[string]struct{}
	SearchText   string
}

// NewFilter builds a filter from plain values.
func NewFilter(minRating int, requiredTags []string, searchText string) Filter {
	f := Filter{
		MinRating:    minRating,
		RequiredTags: make(map[string]struct{}, len(requiredTags)),
		SearchText:   searchText,
	}
	for _, t := range requiredTags {
		f.RequiredTags[t] = struct{}{}
	}
	return f
}

// RequiredList returns the required tags sorted by name.
func (f Filter) RequiredList() []string {
	tags := make([]string, 0, len(f.RequiredTags))
	for t := range f.RequiredTags {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

func (f Filter) clone() Filter {
	c := f
	c.RequiredTags = make(map[string]struct{}, len(f.RequiredTags))
	for t := range f.RequiredTags {
		c.RequiredTags[t] = struct{}{}
	}
	return c
}

// State is the in-memory library browsing state. It is a plain value operated
// on by pure functions; Session owns the single instance and the locking.
//
// The selection stores the selected video's id, not an index. The index is
// derived against the current visible sequence on demand, so recomputing the
// view re-anchors the cursor automatically.
type State struct {
	canonical  map[int64]*library.VideoRecord
	registry   map[string]struct{}
	filter     Filter
	sort       Sort
	mode       ViewMode
	selectedID int64 // 0 = no selection
	visible    []*library.VideoRecord
}

func newState() *State {
	return &State{
		canonical: make(map[int64]*library.VideoRecord),
		registry:  make(map[string]struct{}),
		filter:    Filter{RequiredTags: make(map[string]struct{})},
		sort:      Sort{Field: SortAdded},
		mode:      ViewGrid,
	}
}

// recompute rebuilds the visible sequence from canonical state. It is the
// only way visible changes.
func (st *State) recompute() {
	st.visible = computeVisible(st.canonical, st.filter, st.sort)
}

// selectedIndex returns the selected video's position in the visible
// sequence, or -1 if nothing is selected or the selected video is currently
// filtered out.
func (st *State) selectedIndex() int {
	if st.selectedID == 0 {
		return -1
	}
	for i, v := range st.visible {
		if v.ID == st.selectedID {
			return i
		}
	}
	return -1
}
