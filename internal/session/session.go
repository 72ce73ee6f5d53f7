package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
)

//go:generate mockgen -source=session.go -destination=mocks/store.go -package=mocks

// Store is the persistence boundary the session talks to. *library.Store
// satisfies it.
type Store interface {
	ListVideos(f library.VideoFilter) ([]*library.VideoRecord, int, error)
	ListTags() ([]*library.TagRecord, error)
	UpdateVideo(id int64, u library.VideoUpdate) (*library.VideoRecord, error)
	SetRating(id int64, rating int) error
	AddTagToVideo(videoID int64, name string) error
	RemoveTagFromVideo(videoID int64, name string) error
	RenameTag(oldName, newName string) error
	DeleteTag(name string) error
}

// Session owns the library browsing state and keeps it consistent across
// user mutations and external notifications.
//
// Mutating methods are optimistic: the local state changes first, then the
// store call runs. If the store fails the error is surfaced wrapped in
// ErrExternalFailure and the local mutation stays — callers report the
// failure, the engine never rolls back.
type Session struct {
	mu     sync.Mutex
	state  *State
	store  Store
	bus    *events.Bus
	logger *slog.Logger

	added   <-chan events.Event
	removed <-chan events.Event
}

// New creates a session. The bus may be nil when no external notifications
// are expected (tests, one-shot tools). With a bus, the session subscribes
// immediately: the bus drops events for absent subscribers, so notifications
// published before Run starts draining must already have a channel to land in.
func New(store Store, bus *events.Bus, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		state:  newState(),
		store:  store,
		bus:    bus,
		logger: logger,
	}
	if bus != nil {
		s.added = bus.Subscribe(events.EventVideoAdded, 64)
		s.removed = bus.Subscribe(events.EventVideoRemoved, 64)
	}
	return s
}

// external wraps a store error in ErrExternalFailure.
func external(err error) error {
	return fmt.Errorf("%w: %v", ErrExternalFailure, err)
}

// Load seeds the canonical set and tag registry from the store, replacing
// any current state. Selection and filters reset.
func (s *Session) Load() error {
	videos, _, err := s.store.ListVideos(library.VideoFilter{})
	if err != nil {
		return external(err)
	}
	tags, err := s.store.ListTags()
	if err != nil {
		return external(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState()
	for _, v := range videos {
		s.state.canonical[v.ID] = v
		s.state.registerTags(v.Tags)
	}
	for _, t := range tags {
		s.state.registry[t.Name] = struct{}{}
	}
	s.state.recompute()
	s.logger.Info("library loaded", "videos", len(videos), "tags", len(s.state.registry))
	return nil
}

// Run consumes video add/remove notifications from the bus until the context
// is canceled. The subscriptions were created in New; events buffered since
// then are applied first. Records already merged (by Load or an earlier
// delivery) make the reconciler a no-op, so replays are harmless.
func (s *Session) Run(ctx context.Context) error {
	if s.bus == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	defer s.bus.Unsubscribe(s.added)
	defer s.bus.Unsubscribe(s.removed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-s.added:
			if !ok {
				return nil
			}
			if ev, isAdd := e.(*events.VideoAdded); isAdd && ev.Video != nil {
				s.HandleVideoAdded(ev.Video)
			}
		case e, ok := <-s.removed:
			if !ok {
				return nil
			}
			if ev, isRemove := e.(*events.VideoRemoved); isRemove {
				s.HandleVideoRemoved(ev.VideoID())
			}
		}
	}
}

// Videos returns the current visible sequence. The slice is a copy; the
// records are shared and must be treated as read-only by callers.
func (s *Session) Videos() []*library.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.visible)
}

// Video looks up a canonical record by id.
func (s *Session) Video(id int64) (*library.VideoRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.canonical[id]
	return v, ok
}

// Selected returns the selected record and its index in the visible
// sequence, or (nil, -1) when nothing is selected or the selected record is
// filtered out.
func (s *Session) Selected() (*library.VideoRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.state.selectedIndex()
	if idx < 0 {
		return nil, -1
	}
	return s.state.visible[idx], idx
}

// Tags returns the tag registry sorted by name.
func (s *Session) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]string, 0, len(s.state.registry))
	for t := range s.state.registry {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Snapshot is a point-in-time view of the session for presentation.
type Snapshot struct {
	Filter        Filter
	Sort          Sort
	Mode          ViewMode
	SelectedID    int64
	SelectedIndex int
	VisibleCount  int
	TotalCount    int
}

// Snapshot returns the current filter, sort, mode, and selection.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.state.selectedIndex()
	id := s.state.selectedID
	if idx < 0 {
		id = 0
	}
	return Snapshot{
		Filter:        s.state.filter.clone(),
		Sort:          s.state.sort,
		Mode:          s.state.mode,
		SelectedID:    id,
		SelectedIndex: idx,
		VisibleCount:  len(s.state.visible),
		TotalCount:    len(s.state.canonical),
	}
}

// SetFilter replaces the active filter and recomputes the view.
func (s *Session) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.RequiredTags == nil {
		f.RequiredTags = make(map[string]struct{})
	}
	s.state.filter = f.clone()
	s.state.recompute()
}

// SetSearch replaces only the free-text part of the filter.
func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.filter.SearchText = text
	s.state.recompute()
}

// SetSort replaces the active sort and recomputes the view.
func (s *Session) SetSort(sort Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.sort = sort
	s.state.recompute()
}

// SetMode switches between grid and list navigation.
func (s *Session) SetMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.mode = mode
}

// Select moves the cursor to an explicit index in the visible sequence.
// Out-of-range indices clamp; a negative index clears the selection. Returns
// the newly selected record, or nil when the selection cleared.
func (s *Session) Select(index int) *library.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.state.visible)
	if index < 0 || n == 0 {
		s.state.selectedID = 0
		return nil
	}
	if index >= n {
		index = n - 1
	}
	s.state.selectedID = s.state.visible[index].ID
	return s.state.visible[index]
}

// Navigate moves the cursor by one step. columns is the current grid width
// and is supplied per call since the window may have reflowed; it is ignored
// in list mode. Navigating an empty view is a no-op returning nil. Unknown
// directions for the current mode are ignored.
func (s *Session) Navigate(dir Direction, columns int) *library.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.state.visible)
	if n == 0 {
		return nil
	}
	idx := s.state.selectedIndex()
	var next int
	if s.state.mode == ViewList {
		next = nextListIndex(idx, n, dir)
	} else {
		next = nextGridIndex(idx, n, columns, dir)
	}
	if next < 0 {
		return nil
	}
	s.state.selectedID = s.state.visible[next].ID
	return s.state.visible[next]
}

// AddTag attaches a tag to a video, optimistically locally and then in the
// store. Adding a tag the video already has is a no-op without a store call.
func (s *Session) AddTag(videoID int64, tag string) error {
	s.mu.Lock()
	changed, err := s.state.addTag(videoID, tag)
	if changed {
		s.state.recompute()
	}
	s.mu.Unlock()
	if err != nil || !changed {
		return err
	}
	if err := s.store.AddTagToVideo(videoID, tag); err != nil {
		s.logger.Warn("store add tag failed, local state kept", "video", videoID, "tag", tag, "error", err)
		return external(err)
	}
	return nil
}

// RemoveTag detaches a tag from a video; the registry and the active filter
// prune automatically when the last reference disappears.
func (s *Session) RemoveTag(videoID int64, tag string) error {
	s.mu.Lock()
	changed, err := s.state.removeTag(videoID, tag)
	if changed {
		s.state.recompute()
	}
	s.mu.Unlock()
	if err != nil || !changed {
		return err
	}
	if err := s.store.RemoveTagFromVideo(videoID, tag); err != nil {
		s.logger.Warn("store remove tag failed, local state kept", "video", videoID, "tag", tag, "error", err)
		return external(err)
	}
	return nil
}

// RenameTag renames a tag everywhere: registry, every video, active filter.
// Renaming a tag to itself is a no-op.
func (s *Session) RenameTag(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	s.mu.Lock()
	err := s.state.renameTag(oldName, newName)
	if err == nil {
		s.state.recompute()
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := s.store.RenameTag(oldName, newName); err != nil {
		s.logger.Warn("store rename tag failed, local state kept", "old", oldName, "new", newName, "error", err)
		return external(err)
	}
	return nil
}

// DeleteTag removes a tag from the registry, every video, and the active
// filter.
func (s *Session) DeleteTag(tag string) error {
	s.mu.Lock()
	err := s.state.deleteTag(tag)
	if err == nil {
		s.state.recompute()
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := s.store.DeleteTag(tag); err != nil {
		s.logger.Warn("store delete tag failed, local state kept", "tag", tag, "error", err)
		return external(err)
	}
	return nil
}

// SetRating sets a video's rating, clamped to [0, 5].
func (s *Session) SetRating(videoID int64, rating int) error {
	rating = min(max(rating, 0), 5)

	s.mu.Lock()
	v, ok := s.state.canonical[videoID]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	v.Rating = rating
	s.state.recompute()
	s.mu.Unlock()

	if err := s.store.SetRating(videoID, rating); err != nil {
		s.logger.Warn("store set rating failed, local state kept", "video", videoID, "rating", rating, "error", err)
		return external(err)
	}
	return nil
}

// UpdateVideo applies a partial metadata edit to the canonical record and
// persists it. Edits go to canonical and the view recomputes; the visible
// sequence is never patched in place.
func (s *Session) UpdateVideo(videoID int64, u library.VideoUpdate) error {
	s.mu.Lock()
	v, ok := s.state.canonical[videoID]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if u.Title != nil {
		v.Title = *u.Title
	}
	if u.Description != nil {
		v.Description = *u.Description
	}
	if u.Rating != nil {
		v.Rating = min(max(*u.Rating, 0), 5)
	}
	if u.ThumbnailPath != nil {
		v.ThumbnailPath = *u.ThumbnailPath
	}
	s.state.recompute()
	s.mu.Unlock()

	if _, err := s.store.UpdateVideo(videoID, u); err != nil {
		s.logger.Warn("store update video failed, local state kept", "video", videoID, "error", err)
		return external(err)
	}
	return nil
}

// HandleVideoAdded merges an externally added record into the canonical set.
// A duplicate id is a no-op.
func (s *Session) HandleVideoAdded(rec *library.VideoRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.applyAdd(rec.Clone()) {
		s.state.recompute()
		s.logger.Debug("video added", "id", rec.ID, "path", rec.Path)
	}
}

// HandleVideoRemoved drops an externally removed record. If it was selected,
// the selection clears.
func (s *Session) HandleVideoRemoved(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasSelected, removed := s.state.applyRemove(id)
	if removed {
		s.state.recompute()
		s.logger.Debug("video removed", "id", id, "was_selected", wasSelected)
	}
}
