package v1

import (
	"encoding/json"
	"net/http"

	"github.com/vidkeep/vidkeep/internal/session"
)

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, snapshotToResponse(s.session.Snapshot()))
}

func snapshotToResponse(snap session.Snapshot) sessionResponse {
	return sessionResponse{
		Filter: filterResponse{
			MinRating:    snap.Filter.MinRating,
			RequiredTags: snap.Filter.RequiredList(),
			SearchText:   snap.Filter.SearchText,
		},
		Sort:          sortRequest{Field: string(snap.Sort.Field), Desc: snap.Sort.Desc},
		Mode:          string(snap.Mode),
		SelectedID:    snap.SelectedID,
		SelectedIndex: snap.SelectedIndex,
		VisibleCount:  snap.VisibleCount,
		TotalCount:    snap.TotalCount,
	}
}

// listVisible returns the session's visible sequence: the filtered, sorted
// view the UI renders, not a fresh database query.
func (s *Server) listVisible(w http.ResponseWriter, r *http.Request) {
	videos := s.session.Videos()
	resp := listVideosResponse{
		Items: make([]videoResponse, len(videos)),
		Total: len(videos),
	}
	for i, v := range videos {
		resp.Items[i] = videoToResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) setFilter(w http.ResponseWriter, r *http.Request) {
	var req setFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.MinRating < 0 || req.MinRating > 5 {
		writeError(w, http.StatusBadRequest, "INVALID_RATING", "min_rating must be between 0 and 5")
		return
	}

	s.session.SetFilter(session.NewFilter(req.MinRating, req.RequiredTags, req.SearchText))
	writeJSON(w, http.StatusOK, snapshotToResponse(s.session.Snapshot()))
}

func (s *Server) setSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	field, ok := session.ParseSortField(req.Field)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_SORT", "unknown sort field: "+req.Field)
		return
	}

	s.session.SetSort(session.Sort{Field: field, Desc: req.Desc})
	writeJSON(w, http.StatusOK, snapshotToResponse(s.session.Snapshot()))
}

func (s *Server) setView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	mode, ok := session.ParseViewMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_MODE", "mode must be 'grid' or 'list'")
		return
	}

	s.session.SetMode(mode)
	writeJSON(w, http.StatusOK, snapshotToResponse(s.session.Snapshot()))
}

func (s *Server) setSelection(w http.ResponseWriter, r *http.Request) {
	var req setSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	selected := s.session.Select(req.Index)
	resp := navigateResponse{SelectedIndex: -1}
	if selected != nil {
		vr := videoToResponse(selected)
		resp.Selected = &vr
		_, resp.SelectedIndex = s.session.Selected()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	dir, ok := session.ParseDirection(req.Direction)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_DIRECTION", "unknown direction: "+req.Direction)
		return
	}
	columns := req.Columns
	if columns < 1 {
		columns = 1
	}

	selected := s.session.Navigate(dir, columns)
	resp := navigateResponse{SelectedIndex: -1}
	if selected != nil {
		vr := videoToResponse(selected)
		resp.Selected = &vr
		_, resp.SelectedIndex = s.session.Selected()
	}
	writeJSON(w, http.StatusOK, resp)
}
