package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockServer(t *testing.T, wantMethod, wantPath string, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantMethod, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Status(t *testing.T) {
	srv := mockServer(t, http.MethodGet, "/api/v1/status", http.StatusOK,
		StatusResponse{Status: "ok"})

	resp, err := NewClient(srv.URL).Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestClient_Videos(t *testing.T) {
	srv := mockServer(t, http.MethodGet, "/api/v1/videos", http.StatusOK,
		ListVideosResponse{
			Items: []VideoResponse{{ID: 1, Title: "Beach Day", Rating: 4, Tags: []string{"beach"}}},
			Total: 1,
		})

	resp, err := NewClient(srv.URL).Videos(3, "beach", "", 50)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Beach Day", resp.Items[0].Title)
}

func TestClient_AddTag(t *testing.T) {
	srv := mockServer(t, http.MethodPost, "/api/v1/videos/7/tags", http.StatusOK,
		VideoResponse{ID: 7, Title: "a", Tags: []string{"beach"}})

	v, err := NewClient(srv.URL).AddTag(7, "beach")
	require.NoError(t, err)
	assert.Contains(t, v.Tags, "beach")
}

func TestClient_RemoveTag_EscapesName(t *testing.T) {
	srv := mockServer(t, http.MethodDelete, "/api/v1/videos/7/tags/summer trip", http.StatusNoContent, nil)

	err := NewClient(srv.URL).RemoveTag(7, "summer trip")
	require.NoError(t, err)
}

func TestClient_RenameTag(t *testing.T) {
	srv := mockServer(t, http.MethodPut, "/api/v1/tags/old", http.StatusOK,
		map[string]string{"name": "new"})

	require.NoError(t, NewClient(srv.URL).RenameTag("old", "new"))
}

func TestClient_ServerErrorMessage(t *testing.T) {
	srv := mockServer(t, http.MethodGet, "/api/v1/videos/99", http.StatusNotFound,
		map[string]string{"error": "Video not found", "code": "NOT_FOUND"})

	_, err := NewClient(srv.URL).Video(99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Video not found")
}

func TestClient_DeleteVideo(t *testing.T) {
	srv := mockServer(t, http.MethodDelete, "/api/v1/videos/3", http.StatusNoContent, nil)
	require.NoError(t, NewClient(srv.URL).DeleteVideo(3))
}

func TestClient_SetRating(t *testing.T) {
	srv := mockServer(t, http.MethodPut, "/api/v1/videos/3/rating", http.StatusOK,
		VideoResponse{ID: 3, Rating: 5})

	v, err := NewClient(srv.URL).SetRating(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Rating)
}
