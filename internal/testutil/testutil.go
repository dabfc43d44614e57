// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared helpers for tests.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kcssc/kcssc-go/internal/store"
)

// TestDB creates a migrated SQLite database in a temp directory. It is
// closed automatically when the test finishes.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.NewDB(path)
	require.NoError(t, err, "opening test database")

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.Migrate(db), "migrating test database")
	return db
}

// TestLogger returns a logger that discards all output.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
