package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
	"github.com/vidkeep/vidkeep/internal/suggest"
)

func (s *Server) listVideos(w http.ResponseWriter, r *http.Request) {
	filter := library.VideoFilter{
		MinRating: queryInt(r, "min_rating", 0),
		Tag:       queryString(r, "tag"),
		Search:    queryString(r, "search"),
		Limit:     queryInt(r, "limit", 50),
		Offset:    queryInt(r, "offset", 0),
	}

	items, total, err := s.library.ListVideos(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listVideosResponse{
		Items:  make([]videoResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, v := range items {
		resp.Items[i] = videoToResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	v, err := s.library.GetVideo(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, videoToResponse(v))
}

func (s *Server) updateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req updateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	u := library.VideoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
	}
	if err := s.session.UpdateVideo(id, u); err != nil {
		writeSessionError(w, err)
		return
	}

	v, ok := s.session.Video(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
		return
	}
	writeJSON(w, http.StatusOK, videoToResponse(v))
}

// deleteVideo removes the catalog record only; the file on disk stays. The
// removal flows through the bus so the session drops it like any external
// disappearance.
func (s *Server) deleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	v, err := s.library.GetVideo(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	if err := s.library.DeleteVideo(id); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	s.session.HandleVideoRemoved(id)
	if s.bus != nil {
		s.bus.Publish(events.NewVideoRemoved(id, v.Path))
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req setRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "INVALID_RATING", "rating must be between 0 and 5")
		return
	}

	if err := s.session.SetRating(id, req.Rating); err != nil {
		writeSessionError(w, err)
		return
	}

	v, _ := s.session.Video(id)
	writeJSON(w, http.StatusOK, videoToResponse(v))
}

func (s *Server) listSimilar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	if _, ok := s.session.Video(id); !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
		return
	}

	videos, _, err := s.library.ListVideos(library.VideoFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	matches := suggest.Similar(videos, id, s.cfg.SuggestThreshold)
	resp := similarResponse{Items: make([]similarMatch, len(matches))}
	for i, m := range matches {
		resp.Items[i] = similarMatch{Video: videoToResponse(m.Video), Score: m.Score}
	}
	writeJSON(w, http.StatusOK, resp)
}
