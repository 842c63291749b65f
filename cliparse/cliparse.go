// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Defaults match the conventional repo layout: the warehouse file lives at
// the working directory root and the fetched feed under uncommitted/.
const (
	DefaultWarehousePath = "warehouse.db"
	DefaultDataPath      = "uncommitted/votes.jsonl"
)

type Config struct {
	WarehousePath string
	DataPath      string
	DatabaseType  string
	DatabaseURL   string
}

// ParseFlags validates flags and fills in defaults for the warehouse tools
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("blog-analysis", flag.ContinueOnError)

	fs.StringVar(&cfg.WarehousePath, "w", "", "Warehouse database file (sqlite)")
	fs.StringVar(&cfg.DataPath, "s", "", "Votes JSONL source file")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres only)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables, then defaults
	if cfg.WarehousePath == "" {
		cfg.WarehousePath = os.Getenv("WAREHOUSE_PATH")
	}
	if cfg.WarehousePath == "" {
		cfg.WarehousePath = DefaultWarehousePath
	}

	if cfg.DataPath == "" {
		cfg.DataPath = os.Getenv("VOTES_DATA_PATH")
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
	}

	return cfg, nil
}
