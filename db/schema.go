// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

// SQLite is the default embedded warehouse dialect. Week buckets use
// strftime %G/%V (ISO year and ISO week), so the first days of January may
// fall in the last week of the prior year.
var SQLite = Dialect{
	Name: "sqlite",

	Schema: []string{
		`CREATE TABLE IF NOT EXISTS blog_analysis.votes (
			Id INTEGER PRIMARY KEY,
			PostId INTEGER,
			VoteTypeId INTEGER,
			CreationDate TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS blog_analysis.ingestion_runs (
			RunId TEXT PRIMARY KEY,
			Source TEXT NOT NULL,
			StartedAt TIMESTAMP NOT NULL,
			FinishedAt TIMESTAMP NOT NULL,
			Inserted INTEGER NOT NULL
		)`,
	},

	InsertVote: `
		INSERT INTO blog_analysis.votes (Id, PostId, VoteTypeId, CreationDate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (Id) DO NOTHING`,

	ReplaceView: []string{
		`DROP VIEW IF EXISTS blog_analysis.outlier_weeks`,
		`CREATE VIEW blog_analysis.outlier_weeks AS
		WITH weekly_votes AS (
			SELECT
				CAST(strftime('%G', CreationDate) AS INTEGER) AS Year,
				CAST(strftime('%V', CreationDate) AS INTEGER) AS WeekNumber,
				COUNT(*) AS VoteCount
			FROM blog_analysis.votes
			GROUP BY 1, 2
		),
		average_votes AS (
			SELECT AVG(VoteCount) AS MeanVotes FROM weekly_votes
		)
		SELECT Year, WeekNumber, VoteCount
		FROM weekly_votes
		CROSS JOIN average_votes
		WHERE ABS(1 - (VoteCount / MeanVotes)) > 0.2
		ORDER BY Year ASC, WeekNumber ASC`,
	},

	CountView: `SELECT COUNT(*) FROM blog_analysis.outlier_weeks`,

	InsertRun: `
		INSERT INTO blog_analysis.ingestion_runs (RunId, Source, StartedAt, FinishedAt, Inserted)
		VALUES (?, ?, ?, ?, ?)`,
}

// Postgres is the server-backed alternative. EXTRACT(ISOYEAR/WEEK) matches
// the ISO bucketing of the SQLite dialect.
var Postgres = Dialect{
	Name: "postgres",

	Schema: []string{
		`CREATE SCHEMA IF NOT EXISTS blog_analysis`,
		`CREATE TABLE IF NOT EXISTS blog_analysis.votes (
			Id BIGINT PRIMARY KEY,
			PostId BIGINT,
			VoteTypeId BIGINT,
			CreationDate TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS blog_analysis.ingestion_runs (
			RunId TEXT PRIMARY KEY,
			Source TEXT NOT NULL,
			StartedAt TIMESTAMP NOT NULL,
			FinishedAt TIMESTAMP NOT NULL,
			Inserted BIGINT NOT NULL
		)`,
	},

	InsertVote: `
		INSERT INTO blog_analysis.votes (Id, PostId, VoteTypeId, CreationDate)
		VALUES ($1, $2, $3, $4::timestamp)
		ON CONFLICT (Id) DO NOTHING`,

	ReplaceView: []string{
		`DROP VIEW IF EXISTS blog_analysis.outlier_weeks`,
		`CREATE VIEW blog_analysis.outlier_weeks AS
		WITH weekly_votes AS (
			SELECT
				CAST(EXTRACT(ISOYEAR FROM CreationDate) AS INTEGER) AS Year,
				CAST(EXTRACT(WEEK FROM CreationDate) AS INTEGER) AS WeekNumber,
				COUNT(*) AS VoteCount
			FROM blog_analysis.votes
			GROUP BY 1, 2
		),
		average_votes AS (
			SELECT AVG(VoteCount) AS MeanVotes FROM weekly_votes
		)
		SELECT Year, WeekNumber, VoteCount
		FROM weekly_votes
		CROSS JOIN average_votes
		WHERE ABS(1 - (VoteCount / MeanVotes)) > 0.2
		ORDER BY Year ASC, WeekNumber ASC`,
	},

	CountView: `SELECT COUNT(*) FROM blog_analysis.outlier_weeks`,

	InsertRun: `
		INSERT INTO blog_analysis.ingestion_runs (RunId, Source, StartedAt, FinishedAt, Inserted)
		VALUES ($1, $2, $3::timestamp, $4::timestamp, $5)`,
}
