package session

import (
	"cmp"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/vidkeep/vidkeep/internal/library"
)

// computeVisible derives the visible sequence from the canonical set: filter
// by rating, search text, and required tags, then sort. Canonical base order
// is ascending id, which keeps the pre-sort sequence deterministic.
func computeVisible(canonical map[int64]*library.VideoRecord, f Filter, s Sort) []*library.VideoRecord {
	ids := slices.Sorted(maps.Keys(canonical))
	visible := make([]*library.VideoRecord, 0, len(ids))
	for _, id := range ids {
		if matchesFilter(canonical[id], f) {
			visible = append(visible, canonical[id])
		}
	}
	sortVisible(visible, s)
	return visible
}

func matchesFilter(v *library.VideoRecord, f Filter) bool {
	if f.MinRating > 0 && v.Rating < f.MinRating {
		return false
	}
	if f.SearchText != "" && !matchesSearch(v, f.SearchText) {
		return false
	}
	for tag := range f.RequiredTags {
		if !v.HasTag(tag) {
			return false
		}
	}
	return true
}

// matchesSearch reports whether any of title, filename, description, or a tag
// name contains the search text, case-insensitively.
func matchesSearch(v *library.VideoRecord, text string) bool {
	needle := strings.ToLower(text)
	for _, hay := range []string{v.Title, v.Filename, v.Description} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortVisible orders videos by the sort field. The sort is stable, so equal
// keys keep their canonical relative order. Descending is the exact inverse
// of the ascending comparator, not a separate one.
func sortVisible(videos []*library.VideoRecord, s Sort) {
	sort.SliceStable(videos, func(i, j int) bool {
		a, b := videos[i], videos[j]
		if s.Desc {
			a, b = b, a
		}
		c, ok := compareField(a, b, s.Field)
		if !ok {
			return false
		}
		return c < 0
	})
}

// compareField compares two records on a sort field. Textual fields compare
// case-insensitively. ok is false when the field is not comparable
// (unrecognized field name); incomparable records order after comparable
// ones, which with a uniform field means the base order is kept.
func compareField(a, b *library.VideoRecord, field SortField) (int, bool) {
	switch field {
	case SortTitle:
		return compareFold(a.Title, b.Title), true
	case SortFilename:
		return compareFold(a.Filename, b.Filename), true
	case SortAdded:
		return a.AddedAt.Compare(b.AddedAt), true
	case SortRating:
		return cmp.Compare(a.Rating, b.Rating), true
	case SortSize:
		return cmp.Compare(a.SizeBytes, b.SizeBytes), true
	case SortDuration:
		return cmp.Compare(a.DurationSec, b.DurationSec), true
	}
	return 0, false
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
