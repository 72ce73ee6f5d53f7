package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vidkeep/vidkeep/internal/library"
	"github.com/vidkeep/vidkeep/internal/preview"
)

// streamPreview pushes the video's chapter thumbnails as Server-Sent Events,
// one frame per interval, wrapping around until the client disconnects.
func (s *Server) streamPreview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	v, ok := s.session.Video(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
		return
	}
	if len(v.Chapters) == 0 {
		writeError(w, http.StatusNotFound, "NO_PREVIEW", "Video has no chapter thumbnails")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "NO_STREAMING", "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	cycler := preview.New(s.cfg.PreviewInterval, nil)
	_ = cycler.Run(r.Context(), v, func(index int, frame library.ChapterThumb) {
		payload, err := json.Marshal(previewFrame{
			Index:        index,
			Path:         frame.Path,
			TimestampSec: frame.TimestampSec,
		})
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: frame\ndata: %s\n\n", payload)
		flusher.Flush()
	})
}
