// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ingest loads the newline-delimited JSON vote feed into the warehouse.

# Contract

Ingest decodes one vote object per line and inserts it into
blog_analysis.votes with insert-if-absent semantics keyed on Id: a record
whose Id already exists is skipped, never overwritten, and never an error.
The returned Result counts only the rows actually added, so re-ingesting the
same file reports zero.

Schema and tables are created if absent before reading the feed. A missing
feed file is the advisory ErrSourceMissing condition; the store is left
unchanged.

# Error Policy

Ingestion failures are reported, not fatal. Run wraps Ingest with the full
policy: every error is logged and suppressed, the connection is closed on
every exit path, and the boolean result tells the caller whether a run
completed. Ingestion is idempotent, so a failed run is safely retried by
invoking it again.

Error kinds are sentinels checked with errors.Is:

  - ErrSourceMissing: the feed file does not exist
  - ErrStore: the warehouse rejected an operation

Malformed feed lines surface as decode errors carrying the line number.

# Audit

Each completed run writes one blog_analysis.ingestion_runs row with a
random run ID, the source path, timestamps, and the inserted count. The
audit row is best-effort and never fails the run.
*/
package ingest
