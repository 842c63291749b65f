// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/blog-analysis/cliparse"
	"github.com/danielhkuo/blog-analysis/db"
	"github.com/danielhkuo/blog-analysis/models"
)

var (
	// ErrSourceMissing reports that the feed file does not exist. The store
	// is left untouched beyond schema creation.
	ErrSourceMissing = errors.New("vote dataset not found")

	// ErrStore reports a failure talking to the warehouse.
	ErrStore = errors.New("warehouse error")
)

// Result summarizes one completed ingestion.
type Result struct {
	RunID    string
	Inserted int64
}

// Ingest loads the JSONL feed at sourcePath into blog_analysis.votes,
// inserting each record only if its Id is not already present. Records whose
// Id exists are skipped without error and without overwriting the stored row.
// Inserted reports only the rows actually added. The caller owns conn and is
// responsible for closing it.
func Ingest(conn *sql.DB, dialect db.Dialect, sourcePath string) (Result, error) {
	started := time.Now().UTC()

	slog.Info("creating schema and table if they don't exist")
	if err := db.CreateSchema(conn, dialect); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrSourceMissing, sourcePath)
		}
		return Result{}, fmt.Errorf("failed to open %s: %w", sourcePath, err)
	}
	defer f.Close()

	slog.Info("ingesting data", "source", sourcePath)

	stmt, err := conn.Prepare(dialect.InsertVote)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer stmt.Close()

	var inserted int64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var v models.Vote
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return Result{}, fmt.Errorf("malformed vote record on line %d: %w", line, err)
		}

		res, err := stmt.Exec(v.ID, v.PostID, v.VoteTypeID, v.CreationDate.Format(models.TimestampFormat))
		if err != nil {
			return Result{}, fmt.Errorf("%w: failed to insert vote %d: %v", ErrStore, v.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrStore, err)
		}
		inserted += n
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	runID := uuid.NewString()
	if err := recordRun(conn, dialect, models.IngestionRun{
		RunID:      runID,
		Source:     sourcePath,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Inserted:   inserted,
	}); err != nil {
		// The audit row is best-effort; losing it must not fail the run.
		slog.Error("failed to record ingestion run", "run_id", runID, "error", err)
	}

	slog.Info("inserted new records", "count", inserted, "run_id", runID)
	return Result{RunID: runID, Inserted: inserted}, nil
}

// Run opens the warehouse from cfg, ingests the configured feed, and applies
// the ingestion error policy: every failure is logged and suppressed, so a
// repeat invocation can simply retry. The connection is closed on every exit
// path. The returned flag reports whether an ingestion completed.
func Run(cfg cliparse.Config) (Result, bool) {
	slog.Info("connecting to warehouse", "type", cfg.DatabaseType, "path", cfg.WarehousePath)
	conn, dialect, err := db.Open(cfg)
	if err != nil {
		slog.Error("error during ingestion", "error", err)
		return Result{}, false
	}
	defer func() {
		conn.Close()
		slog.Info("connection closed")
	}()

	res, err := Ingest(conn, dialect, cfg.DataPath)
	if errors.Is(err, ErrSourceMissing) {
		slog.Error("dataset not found, fetch the votes feed first", "path", cfg.DataPath)
		return Result{}, false
	}
	if err != nil {
		slog.Error("error during ingestion", "error", err)
		return Result{}, false
	}
	return res, true
}

func recordRun(conn *sql.DB, dialect db.Dialect, run models.IngestionRun) error {
	_, err := conn.Exec(dialect.InsertRun,
		run.RunID,
		run.Source,
		run.StartedAt.Format(models.TimestampFormat),
		run.FinishedAt.Format(models.TimestampFormat),
		run.Inserted,
	)
	return err
}
