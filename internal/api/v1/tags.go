package v1

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// pathTag extracts a tag name from the URL path, decoding percent escapes so
// tags with spaces round-trip.
func pathTag(r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		return "", false
	}
	tag, err := url.PathUnescape(raw)
	if err != nil || tag == "" {
		return "", false
	}
	return tag, true
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.library.ListTags()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listTagsResponse{Items: make([]tagResponse, len(tags))}
	for i, t := range tags {
		resp.Items[i] = tagResponse{Name: t.Name, VideoCount: t.VideoCount}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) addVideoTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req addTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_TAG", "tag name must not be empty")
		return
	}

	if err := s.session.AddTag(id, req.Name); err != nil {
		writeSessionError(w, err)
		return
	}

	v, _ := s.session.Video(id)
	writeJSON(w, http.StatusOK, videoToResponse(v))
}

func (s *Server) removeVideoTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	tag, ok := pathTag(r, "name")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAG", "missing tag name")
		return
	}

	if err := s.session.RemoveTag(id, tag); err != nil {
		writeSessionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) renameTag(w http.ResponseWriter, r *http.Request) {
	tag, ok := pathTag(r, "name")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAG", "missing tag name")
		return
	}

	var req renameTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.NewName == "" {
		writeError(w, http.StatusBadRequest, "INVALID_TAG", "new_name must not be empty")
		return
	}

	if err := s.session.RenameTag(tag, req.NewName); err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"name": req.NewName})
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	tag, ok := pathTag(r, "name")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAG", "missing tag name")
		return
	}

	if err := s.session.DeleteTag(tag); err != nil {
		writeSessionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
