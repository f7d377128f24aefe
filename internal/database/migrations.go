package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a versioned schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is applied in order; versions already recorded in the
// migrations table are skipped.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS samples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				label TEXT NOT NULL DEFAULT '',
				angles TEXT NOT NULL,
				n INTEGER NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_samples_label ON samples(label);
		`,
	},
	{
		Version: 2,
		Name:    "create_scan_tasks",
		SQL: `
			CREATE TABLE IF NOT EXISTS scan_tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				fg1_sample_id INTEGER NOT NULL REFERENCES samples(id),
				bg_sample_id INTEGER NOT NULL REFERENCES samples(id),
				fg2_sample_id INTEGER REFERENCES samples(id),
				window_width REAL NOT NULL,
				resolution INTEGER NOT NULL,
				center_count INTEGER NOT NULL,
				mode TEXT NOT NULL,
				smoothing REAL NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'pending',
				result_json TEXT,
				error_message TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				started_at TIMESTAMP,
				completed_at TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_scan_tasks_status ON scan_tasks(status);
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
