// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package outliers maintains the blog_analysis.outlier_weeks view.

# The View

outlier_weeks is a pure derived query over blog_analysis.votes, dropped and
recreated in full on every call - there is no incremental maintenance. It
groups votes into ISO (year, week) buckets, takes the arithmetic mean of the
per-week counts over all buckets, and keeps the buckets whose count deviates
from that mean by more than 20 percent in either direction:

	ABS(1 - VoteCount / MeanVotes) > 0.2

Rows are ordered ascending by year, then week number. An empty votes table
produces an empty view without error; the threshold comparison is strict, so
a week at exactly 20 percent deviation is not an outlier.

# Connection Ownership

Create works on a caller-supplied handle and never closes it. CreateDefault
opens its own handle from the configuration and closes it before returning.
Whoever opens a connection closes it; nothing is inferred at runtime.

# Error Policy

Failures are logged with context and propagated as ErrViewComputation. The
view is a derived artifact consumed downstream, so masking a failure would
let stale or absent data pass undetected - the opposite of the ingest
package's advisory policy.
*/
package outliers
