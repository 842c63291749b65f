// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command ingest loads the votes JSONL feed into the warehouse.
//
// With no arguments it ingests uncommitted/votes.jsonl into warehouse.db.
// Ingestion failures are logged and suppressed so the command can simply be
// re-run; only a configuration error exits non-zero.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/blog-analysis/cliparse"
	"github.com/danielhkuo/blog-analysis/ingest"
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if res, ok := ingest.Run(cfg); ok {
		fmt.Printf("Ingested %d new vote records.\n", res.Inserted)
	}
}
