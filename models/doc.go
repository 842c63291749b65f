// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types for the vote warehouse.

# Domain Types

  - Vote: one row of blog_analysis.votes (Id, PostId, VoteTypeId, CreationDate)
  - OutlierWeek: one row of the blog_analysis.outlier_weeks view
  - IngestionRun: audit record for a completed ingestion

# Feed Decoding

Vote implements json.Unmarshaler with lenient coercion, because the JSONL
feed is not consistent across export tools:

  - Id, PostId, VoteTypeId may be JSON numbers or quoted integer strings
  - CreationDate may use any of several ISO-8601-like layouts

A record that cannot be coerced is a decode error, not a zero value.

# Timestamps

TimestampFormat is the single layout written to the warehouse, chosen so
that both SQLite date functions and Postgres parse it without casts.
*/
package models
