package session

import (
	"slices"
	"testing"

	"github.com/vidkeep/vidkeep/internal/library"
)

func TestComputeVisible_EmptyFilterReturnsAll(t *testing.T) {
	st := stateWith(
		vid(3, "c", 0),
		vid(1, "a", 0),
		vid(2, "b", 0),
	)
	st.sort = Sort{} // no sort field: canonical id order

	st.recompute()
	want := []int64{1, 2, 3}
	if got := visibleIDs(st); !slices.Equal(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestComputeVisible_MinRating(t *testing.T) {
	st := stateWith(
		vid(1, "a", 0),
		vid(2, "b", 3),
		vid(3, "c", 5),
	)
	st.filter.MinRating = 3
	st.sort = Sort{}
	st.recompute()

	if got := visibleIDs(st); !slices.Equal(got, []int64{2, 3}) {
		t.Errorf("visible = %v, want [2 3]", got)
	}
	// MinRating 0 keeps unrated videos.
	st.filter.MinRating = 0
	st.recompute()
	if got := len(st.visible); got != 3 {
		t.Errorf("visible count = %d, want 3", got)
	}
}

func TestComputeVisible_RequiredTagsAreANDed(t *testing.T) {
	st := stateWith(
		vid(1, "a", 0, "beach"),
		vid(2, "b", 0, "beach", "family"),
		vid(3, "c", 0, "family"),
	)
	st.filter.RequiredTags = map[string]struct{}{"beach": {}, "family": {}}
	st.sort = Sort{}
	st.recompute()

	if got := visibleIDs(st); !slices.Equal(got, []int64{2}) {
		t.Errorf("visible = %v, want [2]", got)
	}
}

func TestComputeVisible_SearchText(t *testing.T) {
	a := vid(1, "Summer Holiday", 0)
	a.Description = "two weeks in greece"
	b := vid(2, "Winter", 0, "snowboard")
	c := vid(3, "x", 0)
	c.Filename = "GRADUATION.mkv"
	st := stateWith(a, b, c)
	st.sort = Sort{}

	tests := []struct {
		search string
		want   []int64
	}{
		{"", []int64{1, 2, 3}},
		{"holiday", []int64{1}},  // title, case-insensitive
		{"GREECE", []int64{1}},   // description
		{"graduation", []int64{3}}, // filename
		{"snow", []int64{2}},     // tag name
		{"zzz", nil},
	}
	for _, tt := range tests {
		st.filter.SearchText = tt.search
		st.recompute()
		if got := visibleIDs(st); !slices.Equal(got, tt.want) {
			t.Errorf("search %q: visible = %v, want %v", tt.search, got, tt.want)
		}
	}
}

func TestComputeVisible_AllMembersSatisfyFilter(t *testing.T) {
	st := stateWith(
		vid(1, "alpha", 1, "beach"),
		vid(2, "beta", 4, "beach", "family"),
		vid(3, "beach day", 5),
		vid(4, "gamma", 3, "beach"),
	)
	st.filter = Filter{
		MinRating:    3,
		RequiredTags: map[string]struct{}{"beach": {}},
		SearchText:   "b",
	}
	st.recompute()

	for _, v := range st.visible {
		if !matchesFilter(v, st.filter) {
			t.Errorf("visible member %d does not satisfy filter", v.ID)
		}
	}
	// And it is a subset of canonical.
	for _, v := range st.visible {
		if st.canonical[v.ID] != v {
			t.Errorf("visible member %d not from canonical", v.ID)
		}
	}
}

func TestSortVisible_AscReversedEqualsDesc(t *testing.T) {
	// Unique keys on every field so the inverse property is exact.
	videos := []*library.VideoRecord{
		vid(1, "delta", 2),
		vid(2, "Alpha", 5),
		vid(3, "charlie", 1),
		vid(4, "bravo", 4),
	}

	for _, field := range []SortField{SortTitle, SortFilename, SortAdded, SortRating, SortSize, SortDuration} {
		st := stateWith(videos...)
		st.sort = Sort{Field: field}
		st.recompute()
		asc := visibleIDs(st)

		st.sort = Sort{Field: field, Desc: true}
		st.recompute()
		desc := visibleIDs(st)

		slices.Reverse(asc)
		if !slices.Equal(asc, desc) {
			t.Errorf("field %s: reversed ASC %v != DESC %v", field, asc, desc)
		}
	}
}

func TestSortVisible_TextualCaseInsensitive(t *testing.T) {
	st := stateWith(
		vid(1, "banana", 0),
		vid(2, "Apple", 0),
		vid(3, "cherry", 0),
	)
	st.sort = Sort{Field: SortTitle}
	st.recompute()

	if got := visibleIDs(st); !slices.Equal(got, []int64{2, 1, 3}) {
		t.Errorf("visible = %v, want [2 1 3]", got)
	}
}

func TestSortVisible_StableOnTies(t *testing.T) {
	st := stateWith(
		vid(1, "x", 3),
		vid(2, "x", 3),
		vid(3, "x", 3),
	)
	st.sort = Sort{Field: SortRating}
	st.recompute()

	if got := visibleIDs(st); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Errorf("ties should keep canonical order, got %v", got)
	}
}

func TestSortVisible_UnknownFieldKeepsBaseOrder(t *testing.T) {
	st := stateWith(
		vid(2, "b", 0),
		vid(1, "a", 0),
	)
	st.sort = Sort{Field: SortField("bogus")}
	st.recompute()

	if got := visibleIDs(st); !slices.Equal(got, []int64{1, 2}) {
		t.Errorf("visible = %v, want [1 2]", got)
	}
}

// The concrete scenario: ratings [0,3,5,2,4], minRating 3, then rating DESC.
func TestComputeVisible_RatingScenario(t *testing.T) {
	st := stateWith(
		vid(1, "a", 0),
		vid(2, "b", 3),
		vid(3, "c", 5),
		vid(4, "d", 2),
		vid(5, "e", 4),
	)
	st.filter.MinRating = 3
	st.sort = Sort{}
	st.recompute()

	// Original relative order before sort.
	if got := visibleIDs(st); !slices.Equal(got, []int64{2, 3, 5}) {
		t.Fatalf("pre-sort visible = %v, want [2 3 5]", got)
	}

	st.sort = Sort{Field: SortRating, Desc: true}
	st.recompute()
	if got := visibleIDs(st); !slices.Equal(got, []int64{3, 5, 2}) {
		t.Errorf("post-sort visible = %v, want [3 5 2] (ratings 5,4,3)", got)
	}
}
