// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles warehouse connections, dialects, and schema creation.

# Opening the Warehouse

Open selects a backend from the configuration and returns the handle plus
its Dialect:

	conn, dialect, err := db.Open(cfg)
	if err != nil {
		// ...
	}
	defer conn.Close()

Whoever opens a handle owns it and is responsible for closing it.

# Backends

  - sqlite (default): the single-file embedded warehouse via modernc.org/sqlite.
    SQLite has no CREATE SCHEMA, so the blog_analysis namespace is realized by
    attaching the warehouse file under that alias. ATTACH is per connection,
    so the pool is capped at one connection.
  - postgres: a server-backed warehouse via lib/pq with a real blog_analysis
    schema. Selected with DATABASE_TYPE=postgres and a DATABASE_URL.

# Schema Creation

CreateSchema initializes the tables:

	if err := db.CreateSchema(conn, dialect); err != nil {
		// ...
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Objects

  - blog_analysis.votes: one row per vote, Id is the primary key
  - blog_analysis.outlier_weeks: derived view, replaced by the outliers package
  - blog_analysis.ingestion_runs: audit record per completed ingestion

# Week Bucketing

Both dialects bucket CreationDate by ISO year and ISO week number (strftime
%G/%V on SQLite, EXTRACT ISOYEAR/WEEK on Postgres), so early-January votes
may land in the last week of the previous year.
*/
package db
