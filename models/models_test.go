// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestVoteUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Vote
		wantErr bool
	}{
		{
			name: "number fields",
			line: `{"Id":1,"PostId":5,"VoteTypeId":2,"CreationDate":"2022-01-02T00:00:00.000"}`,
			want: Vote{
				ID: 1, PostID: 5, VoteTypeID: 2,
				CreationDate: time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "string fields",
			line: `{"Id":"17","PostId":"3","VoteTypeId":"3","CreationDate":"2022-02-27T00:00:00.000"}`,
			want: Vote{
				ID: 17, PostID: 3, VoteTypeID: 3,
				CreationDate: time.Date(2022, 2, 27, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "date only timestamp",
			line: `{"Id":2,"PostId":1,"VoteTypeId":2,"CreationDate":"2022-01-09"}`,
			want: Vote{
				ID: 2, PostID: 1, VoteTypeID: 2,
				CreationDate: time.Date(2022, 1, 9, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "non integer id",
			line:    `{"Id":"abc","PostId":1,"VoteTypeId":2,"CreationDate":"2022-01-09"}`,
			wantErr: true,
		},
		{
			name:    "bad timestamp",
			line:    `{"Id":1,"PostId":1,"VoteTypeId":2,"CreationDate":"yesterday"}`,
			wantErr: true,
		},
		{
			name:    "missing id",
			line:    `{"PostId":1,"VoteTypeId":2,"CreationDate":"2022-01-09"}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			line:    `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Vote
			err := json.Unmarshal([]byte(tt.line), &v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.ID != tt.want.ID || v.PostID != tt.want.PostID || v.VoteTypeID != tt.want.VoteTypeID {
				t.Errorf("got %+v, want %+v", v, tt.want)
			}
			if !v.CreationDate.Equal(tt.want.CreationDate) {
				t.Errorf("got CreationDate %v, want %v", v.CreationDate, tt.want.CreationDate)
			}
		})
	}
}

func TestParseCreationDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2022-01-02T00:00:00.000", time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2022-01-02T13:45:07", time.Date(2022, 1, 2, 13, 45, 7, 0, time.UTC)},
		{"2022-01-02 13:45:07", time.Date(2022, 1, 2, 13, 45, 7, 0, time.UTC)},
		{"2022-01-02", time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseCreationDate(tt.in)
		if err != nil {
			t.Errorf("ParseCreationDate(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseCreationDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseCreationDate("02/01/2022"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestTimestampFormatRoundTrip(t *testing.T) {
	ts := time.Date(2022, 1, 2, 13, 45, 7, 123_000_000, time.UTC)
	s := ts.Format(TimestampFormat)
	if s != "2022-01-02 13:45:07.123" {
		t.Errorf("unexpected stored form %q", s)
	}
	back, err := ParseCreationDate(s)
	if err != nil {
		t.Fatalf("stored form does not parse back: %v", err)
	}
	if !back.Truncate(time.Second).Equal(ts.Truncate(time.Second)) {
		t.Errorf("round trip drifted: %v -> %v", ts, back)
	}
}
