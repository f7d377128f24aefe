package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spatialrsp/rsp-backend-go/internal/models"
)

// SampleRepository handles database operations for angular samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// Create inserts a sample; the angle array is stored as a JSON column
func (r *SampleRepository) Create(sample *models.Sample) error {
	angles, err := json.Marshal(sample.Angles)
	if err != nil {
		return fmt.Errorf("failed to serialize angles: %w", err)
	}

	result, err := r.db.Exec(
		"INSERT INTO samples (name, label, angles, n) VALUES (?, ?, ?, ?)",
		sample.Name, sample.Label, string(angles), len(sample.Angles),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}

	sample.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get sample id: %w", err)
	}
	sample.N = len(sample.Angles)
	return nil
}

// GetByID retrieves a sample with its angle array
func (r *SampleRepository) GetByID(id int64) (*models.Sample, error) {
	var sample models.Sample
	var angles string

	err := r.db.QueryRow(
		"SELECT id, name, label, angles, n, created_at FROM samples WHERE id = ?", id,
	).Scan(&sample.ID, &sample.Name, &sample.Label, &angles, &sample.N, &sample.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sample %d: %w", id, err)
	}

	if err := json.Unmarshal([]byte(angles), &sample.Angles); err != nil {
		return nil, fmt.Errorf("failed to decode angles for sample %d: %w", id, err)
	}
	return &sample, nil
}

// List returns all samples without their angle arrays (metadata only)
func (r *SampleRepository) List() ([]models.Sample, error) {
	rows, err := r.db.Query(
		"SELECT id, name, label, n, created_at FROM samples ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var s models.Sample
		if err := rows.Scan(&s.ID, &s.Name, &s.Label, &s.N, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// Delete removes a sample by ID
func (r *SampleRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM samples WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sample %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
