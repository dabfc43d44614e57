// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kcssc/kcssc-go/internal/model"
)

// APIClient is a Backend that talks to a remote instance of this API over
// HTTP. It lets a deployment point reads and writes at a central server
// while keeping the local cache and fallback behaviour.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates an APIClient for the given base URL, e.g.
// "https://api.kcssc.ca". A trailing slash is ignored.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is the {"error": "..."} body the API sends on failure.
type apiError struct {
	Error string `json:"error"`
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if json.NewDecoder(resp.Body).Decode(&ae) == nil && ae.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, ae.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func eventQuery(f model.EventFilter) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	return q
}

func (c *APIClient) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", eventQuery(f), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *APIClient) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	var e model.Event
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, nil, &e)
	return e, err
}

func (c *APIClient) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	var created model.Event
	err := c.do(ctx, http.MethodPost, "/api/events", nil, e, &created)
	return created, err
}

func (c *APIClient) UpdateEvent(ctx context.Context, id int64, e model.Event) (model.Event, error) {
	var updated model.Event
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", id), nil, e, &updated)
	return updated, err
}

func (c *APIClient) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil, nil)
}

func programQuery(f model.ProgramFilter) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.AgeGroup != "" {
		q.Set("ageGroup", f.AgeGroup)
	}
	return q
}

func (c *APIClient) ListPrograms(ctx context.Context, f model.ProgramFilter) ([]model.Program, error) {
	var programs []model.Program
	if err := c.do(ctx, http.MethodGet, "/api/programs", programQuery(f), nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *APIClient) GetProgram(ctx context.Context, id int64) (model.Program, error) {
	var p model.Program
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/programs/%d", id), nil, nil, &p)
	return p, err
}

func (c *APIClient) CreateProgram(ctx context.Context, p model.Program) (model.Program, error) {
	var created model.Program
	err := c.do(ctx, http.MethodPost, "/api/programs", nil, p, &created)
	return created, err
}

func (c *APIClient) UpdateProgram(ctx context.Context, id int64, p model.Program) (model.Program, error) {
	var updated model.Program
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/programs/%d", id), nil, p, &updated)
	return updated, err
}

func (c *APIClient) DeleteProgram(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/programs/%d", id), nil, nil, nil)
}

func photoQuery(f model.PhotoFilter) url.Values {
	q := url.Values{}
	if f.Favourite != nil {
		q.Set("favourite", strconv.FormatBool(*f.Favourite))
	}
	if f.Event != "" {
		q.Set("event", f.Event)
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	return q
}

func (c *APIClient) ListPhotos(ctx context.Context, f model.PhotoFilter) ([]model.Photo, error) {
	var photos []model.Photo
	if err := c.do(ctx, http.MethodGet, "/api/photos", photoQuery(f), nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (c *APIClient) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	var p model.Photo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/photos/%d", id), nil, nil, &p)
	return p, err
}

func (c *APIClient) CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error) {
	var created model.Photo
	err := c.do(ctx, http.MethodPost, "/api/photos", nil, p, &created)
	return created, err
}

func (c *APIClient) UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error) {
	var updated model.Photo
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/photos/%d", id), nil, patch, &updated)
	return updated, err
}

func (c *APIClient) DeletePhoto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/photos/%d", id), nil, nil, nil)
}
