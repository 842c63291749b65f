// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/blog-analysis/db"
)

// SetupTestDB creates a fresh single-file warehouse in a temp directory with
// the full blog_analysis schema and returns the open handle, its dialect,
// and the warehouse path. The handle is closed automatically at cleanup.
func SetupTestDB(t *testing.T) (*sql.DB, db.Dialect, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "warehouse.db")
	conn, dialect, err := db.OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to open test warehouse: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn, dialect, path
}

// InsertVote inserts one vote row directly. creationDate is any timestamp
// string the warehouse accepts, e.g. "2022-01-04 00:00:00.000".
func InsertVote(t *testing.T, conn *sql.DB, dialect db.Dialect, id, postID, voteTypeID int64, creationDate string) {
	t.Helper()

	if _, err := conn.Exec(dialect.InsertVote, id, postID, voteTypeID, creationDate); err != nil {
		t.Fatalf("Failed to insert vote %d: %v", id, err)
	}
}

// InsertWeekOfVotes inserts n votes all dated on the given day, continuing
// from *nextID. Useful for building weekly buckets with known counts.
func InsertWeekOfVotes(t *testing.T, conn *sql.DB, dialect db.Dialect, nextID *int64, n int, day string) {
	t.Helper()

	for i := 0; i < n; i++ {
		InsertVote(t, conn, dialect, *nextID, 1, 2, day+" 00:00:00.000")
		*nextID++
	}
}

// WriteVotesFile writes a JSONL feed file into a temp directory and returns
// its path. Each entry becomes one line.
func WriteVotesFile(t *testing.T, lines []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "votes.jsonl")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write votes file: %v", err)
	}
	return path
}

// CountVotes returns the current row count of blog_analysis.votes.
func CountVotes(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM blog_analysis.votes`).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}
