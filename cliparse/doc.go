// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - WarehousePath: SQLite warehouse file (default: warehouse.db)
  - DataPath: votes JSONL source file (default: uncommitted/votes.jsonl)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: connection string, required for postgres only

# CLI Flags

	-w  Warehouse database file
	-s  Votes JSONL source file
	-t  Database type (sqlite or postgres)
	-d  Database URL

# Environment Variables

Flags fall back to environment variables:

	WAREHOUSE_PATH  → -w
	VOTES_DATA_PATH → -s
	DATABASE_TYPE   → -t
	DATABASE_URL    → -d

CLI flags take precedence over environment variables. Both binaries run
with zero flags using the defaults, so a plain invocation ingests
uncommitted/votes.jsonl into warehouse.db.

# Validation

ParseFlags returns an error if DatabaseType is not sqlite or postgres, or
if postgres is selected without a DatabaseURL.
*/
package cliparse
