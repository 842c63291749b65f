// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampFormat is the canonical timestamp layout stored in the warehouse.
// SQLite's date functions and Postgres both parse it directly.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Layouts accepted for CreationDate in the vote feed. The Stack Exchange
// exports use fractional-second ISO-8601 without a zone; the rest cover
// zoned and date-only variants.
var creationDateLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Vote is one row of blog_analysis.votes.
type Vote struct {
	ID           int64
	PostID       int64
	VoteTypeID   int64
	CreationDate time.Time
}

// voteJSON mirrors the wire shape of one feed line. Integer fields arrive
// as JSON numbers or as quoted strings depending on the export tool.
type voteJSON struct {
	ID           *flexInt64 `json:"Id"`
	PostID       *flexInt64 `json:"PostId"`
	VoteTypeID   *flexInt64 `json:"VoteTypeId"`
	CreationDate *string    `json:"CreationDate"`
}

// UnmarshalJSON decodes a feed line, coercing integer fields from either
// numbers or strings and CreationDate from the accepted timestamp layouts.
// All four fields are required: a vote without an Id would collide with
// other incomplete rows under insert-if-absent.
func (v *Vote) UnmarshalJSON(data []byte) error {
	var raw voteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == nil || raw.PostID == nil || raw.VoteTypeID == nil || raw.CreationDate == nil {
		return fmt.Errorf("vote record missing required fields")
	}

	ts, err := ParseCreationDate(*raw.CreationDate)
	if err != nil {
		return err
	}

	v.ID = int64(*raw.ID)
	v.PostID = int64(*raw.PostID)
	v.VoteTypeID = int64(*raw.VoteTypeID)
	v.CreationDate = ts
	return nil
}

// ParseCreationDate parses a feed timestamp, trying each accepted layout.
func ParseCreationDate(s string) (time.Time, error) {
	for _, layout := range creationDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized CreationDate %q", s)
}

// OutlierWeek is one row of the blog_analysis.outlier_weeks view: a
// (year, week-number) bucket whose vote count deviates from the global
// weekly mean by more than the outlier threshold.
type OutlierWeek struct {
	Year       int
	WeekNumber int
	VoteCount  int64
}

// IngestionRun is the audit record written after a completed ingestion.
type IngestionRun struct {
	RunID      string
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time
	Inserted   int64
}

// flexInt64 accepts a JSON number or a quoted integer string.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return fmt.Errorf("missing integer value")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	*f = flexInt64(n)
	return nil
}
