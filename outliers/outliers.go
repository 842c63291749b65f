// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package outliers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/blog-analysis/cliparse"
	"github.com/danielhkuo/blog-analysis/db"
	"github.com/danielhkuo/blog-analysis/models"
)

// ErrViewComputation reports a failure creating or counting the
// outlier_weeks view. Unlike ingestion errors it is propagated: a broken
// derived view must not pass silently to downstream consumers.
var ErrViewComputation = errors.New("outlier_weeks view computation failed")

// Create replaces blog_analysis.outlier_weeks on conn and returns the number
// of outlier weeks the fresh view contains. The view buckets votes by ISO
// (year, week), computes the mean weekly count over all buckets, and keeps
// buckets with ABS(1 - VoteCount/MeanVotes) > 0.2, ordered by year then week.
// An empty votes table yields an empty view, not an error.
//
// The caller owns conn; it is never closed here.
func Create(conn *sql.DB, dialect db.Dialect) (int, error) {
	slog.Info("creating outlier_weeks view")

	for _, stmt := range dialect.ReplaceView {
		if _, err := conn.Exec(stmt); err != nil {
			slog.Error("error creating outlier_weeks view", "error", err)
			return 0, fmt.Errorf("%w: %v", ErrViewComputation, err)
		}
	}

	var count int
	if err := conn.QueryRow(dialect.CountView).Scan(&count); err != nil {
		slog.Error("error creating outlier_weeks view", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrViewComputation, err)
	}

	slog.Info("created outlier_weeks view", "rows", count)
	return count, nil
}

// CreateDefault opens its own connection to the warehouse selected by cfg,
// ensures the schema, replaces the view, and closes the connection before
// returning. Ownership is scoped to the opener: callers holding their own
// handle use Create and keep the handle open.
func CreateDefault(cfg cliparse.Config) (int, error) {
	slog.Info("connecting to warehouse", "type", cfg.DatabaseType, "path", cfg.WarehousePath)
	conn, dialect, err := db.Open(cfg)
	if err != nil {
		slog.Error("error creating outlier_weeks view", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrViewComputation, err)
	}
	defer func() {
		conn.Close()
		slog.Info("connection closed")
	}()

	if err := db.CreateSchema(conn, dialect); err != nil {
		slog.Error("error creating outlier_weeks view", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrViewComputation, err)
	}

	return Create(conn, dialect)
}

// List reads the current contents of the view in its stored order
// (ascending by year, then week number).
func List(conn *sql.DB) ([]models.OutlierWeek, error) {
	rows, err := conn.Query(`SELECT Year, WeekNumber, VoteCount FROM blog_analysis.outlier_weeks`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrViewComputation, err)
	}
	defer rows.Close()

	var weeks []models.OutlierWeek
	for rows.Next() {
		var w models.OutlierWeek
		if err := rows.Scan(&w.Year, &w.WeekNumber, &w.VoteCount); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrViewComputation, err)
		}
		weeks = append(weeks, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrViewComputation, err)
	}
	return weeks, nil
}
