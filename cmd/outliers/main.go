// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command outliers recreates the blog_analysis.outlier_weeks view.
//
// With no arguments it operates on warehouse.db. Unlike ingestion, a view
// computation failure exits non-zero: the view feeds downstream analysis and
// a silent failure would let stale data pass undetected.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/blog-analysis/cliparse"
	"github.com/danielhkuo/blog-analysis/outliers"
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	count, err := outliers.CreateDefault(cfg)
	if err != nil {
		slog.Error("outlier computation failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Created outlier_weeks view with %d outlier weeks detected\n", count)
}
