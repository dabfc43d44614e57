// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kcssc/kcssc-go/internal/cache"
	"github.com/kcssc/kcssc-go/internal/imaging"
	"github.com/kcssc/kcssc-go/internal/service"
	"github.com/kcssc/kcssc-go/internal/store"
	"github.com/kcssc/kcssc-go/internal/testutil"
)

// newTestHandler builds a handler over a fresh migrated database.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.TestDB(t)
	caches := cache.NewEntityCaches(cache.NewSimpleMemoryCache(5*time.Minute), 5*time.Minute)
	t.Cleanup(func() { _ = caches.Close() })

	uploads, err := imaging.NewProcessor(t.TempDir())
	require.NoError(t, err)

	data := service.New(service.Options{
		Backend: service.NewStoreBackend(store.New(db)),
		Caches:  caches,
		Logger:  testutil.TestLogger(),
	})

	h := New(Options{
		Data:    data,
		Uploads: uploads,
		DB:      db,
		Logger:  testutil.TestLogger(),
	})
	return h.Routes()
}

// newMockHandler builds a handler with no backend configured.
func newMockHandler(t *testing.T) http.Handler {
	t.Helper()
	h := New(Options{
		Data:   service.New(service.Options{Logger: testutil.TestLogger()}),
		Logger: testutil.TestLogger(),
	})
	return h.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v),
		"body: %s", rec.Body.String())
	return v
}
