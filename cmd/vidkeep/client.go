package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the vidkeep server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new vidkeep API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func serverError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, errResp.Error)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) send(method, path string, body any, result any) error {
	var rd io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		rd = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if result != nil {
			return json.NewDecoder(resp.Body).Decode(result)
		}
		return nil
	case http.StatusNoContent:
		return nil
	default:
		return serverError(resp)
	}
}

// API response types (mirror server types)

type VideoResponse struct {
	ID          int64    `json:"id"`
	Filename    string   `json:"filename"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Path        string   `json:"path"`
	SizeBytes   int64    `json:"size_bytes"`
	DurationSec float64  `json:"duration_sec"`
	Rating      int      `json:"rating"`
	Tags        []string `json:"tags"`
	AddedAt     string   `json:"added_at"`
}

type ListVideosResponse struct {
	Items []VideoResponse `json:"items"`
	Total int             `json:"total"`
}

type TagItem struct {
	Name       string `json:"name"`
	VideoCount int    `json:"video_count"`
}

type ListTagsResponse struct {
	Items []TagItem `json:"items"`
}

type SimilarMatch struct {
	Video VideoResponse `json:"video"`
	Score float64       `json:"score"`
}

type SimilarResponse struct {
	Items []SimilarMatch `json:"items"`
}

type EventItem struct {
	ID         int64  `json:"id"`
	EventType  string `json:"event_type"`
	VideoID    int64  `json:"video_id"`
	OccurredAt string `json:"occurred_at"`
}

type ListEventsResponse struct {
	Items []EventItem `json:"items"`
	Total int         `json:"total"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Videos(minRating int, tag, search string, limit int) (*ListVideosResponse, error) {
	params := url.Values{}
	if minRating > 0 {
		params.Set("min_rating", fmt.Sprintf("%d", minRating))
	}
	if tag != "" {
		params.Set("tag", tag)
	}
	if search != "" {
		params.Set("search", search)
	}
	params.Set("limit", fmt.Sprintf("%d", limit))

	var resp ListVideosResponse
	if err := c.get("/api/v1/videos?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Video(id int64) (*VideoResponse, error) {
	var resp VideoResponse
	if err := c.get(fmt.Sprintf("/api/v1/videos/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteVideo(id int64) error {
	return c.send(http.MethodDelete, fmt.Sprintf("/api/v1/videos/%d", id), nil, nil)
}

func (c *Client) SetRating(id int64, rating int) (*VideoResponse, error) {
	var resp VideoResponse
	err := c.send(http.MethodPut, fmt.Sprintf("/api/v1/videos/%d/rating", id),
		map[string]int{"rating": rating}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddTag(id int64, tag string) (*VideoResponse, error) {
	var resp VideoResponse
	err := c.send(http.MethodPost, fmt.Sprintf("/api/v1/videos/%d/tags", id),
		map[string]string{"name": tag}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveTag(id int64, tag string) error {
	return c.send(http.MethodDelete,
		fmt.Sprintf("/api/v1/videos/%d/tags/%s", id, url.PathEscape(tag)), nil, nil)
}

func (c *Client) Tags() (*ListTagsResponse, error) {
	var resp ListTagsResponse
	if err := c.get("/api/v1/tags", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RenameTag(oldName, newName string) error {
	return c.send(http.MethodPut, "/api/v1/tags/"+url.PathEscape(oldName),
		map[string]string{"new_name": newName}, nil)
}

func (c *Client) DeleteTag(name string) error {
	return c.send(http.MethodDelete, "/api/v1/tags/"+url.PathEscape(name), nil, nil)
}

func (c *Client) Similar(id int64) (*SimilarResponse, error) {
	var resp SimilarResponse
	if err := c.get(fmt.Sprintf("/api/v1/videos/%d/similar", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Events(limit int) (*ListEventsResponse, error) {
	var resp ListEventsResponse
	if err := c.get(fmt.Sprintf("/api/v1/events?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
