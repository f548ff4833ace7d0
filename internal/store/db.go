package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkvetter/internal/models"
)

var DB *pgxpool.Pool

// Init connects to Postgres and runs migrations.
func Init(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	DB, err = pgxpool.New(ctx, connString)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return runMigrations(ctx)
}

// runMigrations creates the necessary tables if they don't exist.
func runMigrations(ctx context.Context) error {
	// Table: jobs (tracks bulk scan batches)
	queryJobs := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		total_count INT DEFAULT 0,
		processed_count INT DEFAULT 0,
		created_at TIMESTAMP DEFAULT NOW(),
		completed_at TIMESTAMP
	);`

	// Table: scans (every assessment, single or batched)
	// The full RiskAssessment is stored as JSONB so results can be
	// re-examined later without re-scoring.
	queryScans := `
	CREATE TABLE IF NOT EXISTS scans (
		id SERIAL PRIMARY KEY,
		job_id TEXT REFERENCES jobs(id),
		url TEXT NOT NULL,
		domain TEXT NOT NULL,
		score INT NOT NULL,
		trust_level TEXT NOT NULL,
		data JSONB NOT NULL,
		scanned_at TIMESTAMP DEFAULT NOW()
	);`

	if _, err := DB.Exec(ctx, queryJobs); err != nil {
		return fmt.Errorf("migration failed (jobs): %w", err)
	}
	if _, err := DB.Exec(ctx, queryScans); err != nil {
		return fmt.Errorf("migration failed (scans): %w", err)
	}

	return nil
}

// SaveScan persists one assessment. jobID may be empty for interactive
// single-URL scans.
func SaveScan(ctx context.Context, jobID string, assessment models.RiskAssessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}

	var job *string
	if jobID != "" {
		job = &jobID
	}

	_, err = DB.Exec(ctx, `
		INSERT INTO scans (job_id, url, domain, score, trust_level, data)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, job, assessment.URL, assessment.Domain, assessment.Score, string(assessment.TrustLevel), data)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// ScanRow is one persisted assessment as returned to API consumers.
type ScanRow struct {
	URL        string          `json:"url"`
	Domain     string          `json:"domain"`
	Score      int             `json:"score"`
	TrustLevel string          `json:"trust_level"`
	ScannedAt  time.Time       `json:"scanned_at"`
	Data       json.RawMessage `json:"data"`
}

// RecentScans returns the latest persisted assessments, newest first.
func RecentScans(ctx context.Context, limit int) ([]ScanRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := DB.Query(ctx, `
		SELECT url, domain, score, trust_level, scanned_at, data
		FROM scans ORDER BY scanned_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	scans := []ScanRow{}
	for rows.Next() {
		var row ScanRow
		if err := rows.Scan(&row.URL, &row.Domain, &row.Score, &row.TrustLevel, &row.ScannedAt, &row.Data); err != nil {
			continue // skip malformed rows
		}
		scans = append(scans, row)
	}
	return scans, rows.Err()
}

// DomainCount pairs a domain with how often it was flagged.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// TopFlaggedDomains lists the domains most often classified Suspicious or
// Dangerous, for the /stats endpoint.
func TopFlaggedDomains(ctx context.Context, limit int) ([]DomainCount, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	rows, err := DB.Query(ctx, `
		SELECT domain, COUNT(*) AS hits
		FROM scans
		WHERE trust_level IN ('Suspicious', 'Dangerous')
		GROUP BY domain ORDER BY hits DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top domains: %w", err)
	}
	defer rows.Close()

	counts := []DomainCount{}
	for rows.Next() {
		var dc DomainCount
		if err := rows.Scan(&dc.Domain, &dc.Count); err != nil {
			continue
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// DangerousCountSince counts Dangerous verdicts recorded after the cutoff.
func DangerousCountSince(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	err := DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM scans
		WHERE trust_level = 'Dangerous' AND scanned_at >= $1
	`, cutoff).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query dangerous count: %w", err)
	}
	return count, nil
}
