// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/blog-analysis/cliparse"
)

// Dialect carries the SQL variants for one supported warehouse backend.
// Statements address objects through the blog_analysis schema so the two
// backends expose the same surface: blog_analysis.votes,
// blog_analysis.outlier_weeks, blog_analysis.ingestion_runs.
type Dialect struct {
	Name string

	// Schema statements are idempotent create-if-absent DDL.
	Schema []string

	// InsertVote takes (Id, PostId, VoteTypeId, CreationDate) and resolves a
	// primary-key conflict to a no-op, not an error.
	InsertVote string

	// ReplaceView drops and recreates the outlier_weeks view.
	ReplaceView []string

	// CountView counts the rows of the freshly created view.
	CountView string

	// InsertRun takes (RunId, Source, StartedAt, FinishedAt, Inserted).
	InsertRun string
}

// Open connects to the warehouse selected by cfg and returns the handle
// together with the dialect its SQL should use. The caller owns the handle
// and must close it.
func Open(cfg cliparse.Config) (*sql.DB, Dialect, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return OpenPostgres(cfg.DatabaseURL)
	default:
		return OpenSQLite(cfg.WarehousePath)
	}
}

// OpenSQLite opens the single-file warehouse at path, creating it if absent.
// The blog_analysis schema namespace is an attached database, and ATTACH is
// per connection rather than per pool, so the pool is capped at one
// connection. That also serializes writers, which SQLite wants anyway.
func OpenSQLite(path string) (*sql.DB, Dialect, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(`ATTACH DATABASE ? AS blog_analysis`, path); err != nil {
		conn.Close()
		return nil, Dialect{}, fmt.Errorf("failed to attach warehouse %s: %w", path, err)
	}
	return conn, SQLite, nil
}

// OpenPostgres connects to a server-backed warehouse. The blog_analysis
// namespace is a real Postgres schema, created by CreateSchema.
func OpenPostgres(url string) (*sql.DB, Dialect, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, Dialect{}, fmt.Errorf("postgres ping failed: %w", err)
	}
	return conn, Postgres, nil
}

// CreateSchema creates the blog_analysis tables if they do not exist.
// Safe to call multiple times.
func CreateSchema(conn *sql.DB, d Dialect) error {
	for _, stmt := range d.Schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
