// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSQLite_CreatesWarehouseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	conn, dialect, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer conn.Close()

	if dialect.Name != "sqlite" {
		t.Errorf("expected sqlite dialect, got %q", dialect.Name)
	}
	if err := CreateSchema(conn, dialect); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("warehouse file not created: %v", err)
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	conn, dialect, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 3; i++ {
		if err := CreateSchema(conn, dialect); err != nil {
			t.Fatalf("CreateSchema run %d failed: %v", i+1, err)
		}
	}
}

func TestOpenSQLite_DataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	conn, dialect, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := CreateSchema(conn, dialect); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if _, err := conn.Exec(dialect.InsertVote, 1, 2, 3, "2022-01-04 00:00:00.000"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	conn, _, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM blog_analysis.votes`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 persisted vote, got %d", n)
	}
}

func TestInsertVote_ConflictIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	conn, dialect, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer conn.Close()
	if err := CreateSchema(conn, dialect); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	if _, err := conn.Exec(dialect.InsertVote, 1, 10, 2, "2022-01-04 00:00:00.000"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	// Same Id with different attributes: must neither error nor overwrite.
	res, err := conn.Exec(dialect.InsertVote, 1, 99, 9, "2023-06-01 00:00:00.000")
	if err != nil {
		t.Fatalf("conflicting insert errored: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 0 {
		t.Errorf("conflicting insert affected %d rows, want 0", n)
	}

	var postID int64
	if err := conn.QueryRow(`SELECT PostId FROM blog_analysis.votes WHERE Id = 1`).Scan(&postID); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if postID != 10 {
		t.Errorf("existing row was altered: PostId = %d, want 10", postID)
	}
}
