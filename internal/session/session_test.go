package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
	"github.com/vidkeep/vidkeep/internal/session"
	"github.com/vidkeep/vidkeep/internal/session/mocks"
)

func record(id int64, title string, rating int, tags ...string) *library.VideoRecord {
	return &library.VideoRecord{
		ID:       id,
		Filename: fmt.Sprintf("video%03d.mkv", id),
		Title:    title,
		Path:     fmt.Sprintf("/videos/video%03d.mkv", id),
		Rating:   rating,
		Tags:     tags,
		AddedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

// loaded builds a session seeded with the given records via Load.
func loaded(t *testing.T, store *mocks.MockStore, videos ...*library.VideoRecord) *session.Session {
	t.Helper()
	store.EXPECT().ListVideos(gomock.Any()).Return(videos, len(videos), nil)
	store.EXPECT().ListTags().Return(nil, nil)
	s := session.New(store, nil, nil)
	require.NoError(t, s.Load())
	return s
}

func visibleIDs(s *session.Session) []int64 {
	videos := s.Videos()
	ids := make([]int64, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}

func TestSession_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListVideos(gomock.Any()).Return([]*library.VideoRecord{
		record(1, "a", 0, "beach"),
		record(2, "b", 3),
	}, 2, nil)
	store.EXPECT().ListTags().Return([]*library.TagRecord{
		{Name: "beach", VideoCount: 1},
	}, nil)

	s := session.New(store, nil, nil)
	require.NoError(t, s.Load())

	assert.Equal(t, []int64{1, 2}, visibleIDs(s))
	assert.Equal(t, []string{"beach"}, s.Tags())
	snap := s.Snapshot()
	assert.Equal(t, 2, snap.TotalCount)
	assert.Equal(t, -1, snap.SelectedIndex)
}

func TestSession_Load_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListVideos(gomock.Any()).Return(nil, 0, errors.New("db locked"))

	s := session.New(store, nil, nil)
	err := s.Load()
	assert.ErrorIs(t, err, session.ErrExternalFailure)
}

func TestSession_AddTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0))

	store.EXPECT().AddTagToVideo(int64(1), "beach").Return(nil)
	require.NoError(t, s.AddTag(1, "beach"))
	assert.Equal(t, []string{"beach"}, s.Tags())

	// Re-adding is a no-op: no second store call expected.
	require.NoError(t, s.AddTag(1, "beach"))

	err := s.AddTag(99, "beach")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSession_AddTag_StoreFailureKeepsLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0))

	store.EXPECT().AddTagToVideo(int64(1), "beach").Return(errors.New("disk full"))
	err := s.AddTag(1, "beach")
	assert.ErrorIs(t, err, session.ErrExternalFailure)

	// No rollback: the tag stays applied locally.
	v, ok := s.Video(1)
	require.True(t, ok)
	assert.True(t, v.HasTag("beach"))
	assert.Equal(t, []string{"beach"}, s.Tags())
}

func TestSession_RemoveTag_StoreFailureKeepsLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0, "beach"))

	store.EXPECT().RemoveTagFromVideo(int64(1), "beach").Return(errors.New("disk full"))
	err := s.RemoveTag(1, "beach")
	assert.ErrorIs(t, err, session.ErrExternalFailure)

	v, _ := s.Video(1)
	assert.False(t, v.HasTag("beach"))
	assert.Empty(t, s.Tags())
}

func TestSession_RenameTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "a", 0, "hollidays"),
		record(2, "b", 0, "hollidays"),
	)

	store.EXPECT().RenameTag("hollidays", "holidays").Return(nil)
	require.NoError(t, s.RenameTag("hollidays", "holidays"))
	assert.Equal(t, []string{"holidays"}, s.Tags())

	// Renaming to itself never reaches the store.
	require.NoError(t, s.RenameTag("holidays", "holidays"))
}

func TestSession_RenameTag_DuplicateSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0, "beach", "sea"))

	// Local validation fails, so no RenameTag expectation is set.
	err := s.RenameTag("beach", "sea")
	assert.ErrorIs(t, err, session.ErrDuplicateTag)
	assert.Equal(t, []string{"beach", "sea"}, s.Tags())
}

func TestSession_DeleteTag_StripsActiveFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "A", 0, "cat"),
		record(2, "B", 0, "cat", "pets"),
		record(3, "C", 0),
	)

	s.SetFilter(session.NewFilter(0, []string{"cat"}, ""))
	require.Equal(t, []int64{1, 2}, visibleIDs(s))

	store.EXPECT().DeleteTag("cat").Return(nil)
	require.NoError(t, s.DeleteTag("cat"))

	// The filter no longer requires the deleted tag, so the view is not
	// stuck empty.
	assert.Equal(t, []int64{1, 2, 3}, visibleIDs(s))
	assert.Equal(t, []string{"pets"}, s.Tags())
	_, ok := s.Snapshot().Filter.RequiredTags["cat"]
	assert.False(t, ok)
}

func TestSession_SetRating_Clamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 3))

	store.EXPECT().SetRating(int64(1), 5).Return(nil)
	require.NoError(t, s.SetRating(1, 9))
	v, _ := s.Video(1)
	assert.Equal(t, 5, v.Rating)

	store.EXPECT().SetRating(int64(1), 0).Return(nil)
	require.NoError(t, s.SetRating(1, -2))
	v, _ = s.Video(1)
	assert.Equal(t, 0, v.Rating)

	assert.ErrorIs(t, s.SetRating(99, 3), session.ErrNotFound)
}

func TestSession_UpdateVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "old title", 0))

	title := "new title"
	u := library.VideoUpdate{Title: &title}
	store.EXPECT().UpdateVideo(int64(1), u).Return(nil, nil)
	require.NoError(t, s.UpdateVideo(1, u))

	v, _ := s.Video(1)
	assert.Equal(t, "new title", v.Title)
}

func TestSession_SelectionReanchorsAcrossFilterAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "a", 1),
		record(2, "b", 4),
		record(3, "c", 5),
	)

	// Select video 2 (index 1 in id order).
	v := s.Select(1)
	require.NotNil(t, v)
	require.Equal(t, int64(2), v.ID)

	// Rating DESC reorders to [3 2 1]; the selection follows the record.
	s.SetSort(session.Sort{Field: session.SortRating, Desc: true})
	sel, idx := s.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, int64(2), sel.ID)
	assert.Equal(t, 1, idx)

	// A filter hiding video 2 leaves no selection visible.
	s.SetFilter(session.NewFilter(5, nil, ""))
	sel, idx = s.Selected()
	assert.Nil(t, sel)
	assert.Equal(t, -1, idx)

	// Relaxing the filter brings the same record back as selected.
	s.SetFilter(session.NewFilter(0, nil, ""))
	sel, idx = s.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, int64(2), sel.ID)
}

func TestSession_SelectClampsAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0), record(2, "b", 0))

	v := s.Select(10)
	require.NotNil(t, v)
	assert.Equal(t, int64(2), v.ID)

	assert.Nil(t, s.Select(-1))
	_, idx := s.Selected()
	assert.Equal(t, -1, idx)
}

func TestSession_Navigate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "a", 0),
		record(2, "b", 0),
		record(3, "c", 0),
		record(4, "d", 0),
		record(5, "e", 0),
	)

	// Grid mode, 3 columns. First move from no selection lands on index 0.
	v := s.Navigate(session.DirDown, 3)
	require.NotNil(t, v)
	assert.Equal(t, int64(1), v.ID)

	v = s.Navigate(session.DirDown, 3)
	assert.Equal(t, int64(4), v.ID)
	v = s.Navigate(session.DirDown, 3) // wraps to column top
	assert.Equal(t, int64(1), v.ID)

	// List mode ignores columns and wraps linearly.
	s.SetMode(session.ViewList)
	s.Select(4)
	v = s.Navigate(session.DirNext, 3)
	assert.Equal(t, int64(1), v.ID)
}

func TestSession_Navigate_EmptyView(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store)

	assert.Nil(t, s.Navigate(session.DirDown, 3))
	_, idx := s.Selected()
	assert.Equal(t, -1, idx)
}

func TestSession_HandleVideoAdded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store, record(1, "a", 0))

	s.HandleVideoAdded(record(2, "b", 0, "new"))
	assert.Equal(t, []int64{1, 2}, visibleIDs(s))
	assert.Equal(t, []string{"new"}, s.Tags())

	// Duplicate id keeps the original record.
	s.HandleVideoAdded(record(1, "imposter", 0))
	v, _ := s.Video(1)
	assert.Equal(t, "a", v.Title)
}

func TestSession_HandleVideoRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "a", 0, "beach"),
		record(2, "b", 0),
	)

	s.SetFilter(session.NewFilter(0, []string{"beach"}, ""))

	s.Select(0) // video 1
	s.HandleVideoRemoved(1)

	assert.Empty(t, visibleIDs(s))
	_, idx := s.Selected()
	assert.Equal(t, -1, idx)
	// The registry prunes, but the filter keeps requiring the tag.
	assert.Empty(t, s.Tags())
	_, ok := s.Snapshot().Filter.RequiredTags["beach"]
	assert.True(t, ok)

	// Removing an unknown id is a no-op.
	s.HandleVideoRemoved(42)
}

func TestSession_SetSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	s := loaded(t, store,
		record(1, "Summer Holiday", 0),
		record(2, "Winter", 0),
	)

	s.SetSearch("holiday")
	assert.Equal(t, []int64{1}, visibleIDs(s))

	s.SetSearch("")
	assert.Equal(t, []int64{1, 2}, visibleIDs(s))
}

func TestSession_EventsBeforeRunAreNotLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListVideos(gomock.Any()).Return(nil, 0, nil)
	store.EXPECT().ListTags().Return(nil, nil)

	bus := events.NewBus(nil, nil)
	defer func() { _ = bus.Close() }()
	s := session.New(store, bus, nil)
	require.NoError(t, s.Load())

	// Published before the notification loop starts draining. The session
	// subscribed in New, so these sit in its buffer instead of vanishing.
	bus.Publish(events.NewVideoAdded(record(1, "a", 0)))
	bus.Publish(events.NewVideoAdded(record(2, "b", 0)))
	bus.Publish(events.NewVideoRemoved(2, "/videos/video002.mkv"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		ids := visibleIDs(s)
		return len(ids) == 1 && ids[0] == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for notification loop to stop")
	}
}
