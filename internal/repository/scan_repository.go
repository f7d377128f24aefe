package repository

import (
	"database/sql"
	"fmt"

	"github.com/spatialrsp/rsp-backend-go/internal/models"
)

// ScanRepository handles database operations for scan tasks
type ScanRepository struct {
	db *sql.DB
}

// NewScanRepository creates a new scan repository
func NewScanRepository(db *sql.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create inserts a pending scan task
func (r *ScanRepository) Create(task *models.ScanTask) error {
	var fg2 interface{}
	if task.FG2SampleID != 0 {
		fg2 = task.FG2SampleID
	}

	result, err := r.db.Exec(`
		INSERT INTO scan_tasks
			(fg1_sample_id, bg_sample_id, fg2_sample_id, window_width,
			 resolution, center_count, mode, smoothing, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.FG1SampleID, task.BGSampleID, fg2, task.Window,
		task.Resolution, task.CenterCount, task.Mode, task.Smoothing,
		models.ScanStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan task: %w", err)
	}

	task.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get scan task id: %w", err)
	}
	task.Status = models.ScanStatusPending
	return nil
}

// GetByID retrieves a scan task
func (r *ScanRepository) GetByID(id int64) (*models.ScanTask, error) {
	var task models.ScanTask
	var fg2 sql.NullInt64
	var resultJSON, errorMessage sql.NullString
	var startedAt, completedAt sql.NullTime

	err := r.db.QueryRow(`
		SELECT id, fg1_sample_id, bg_sample_id, fg2_sample_id, window_width,
		       resolution, center_count, mode, smoothing, status,
		       result_json, error_message, created_at, updated_at,
		       started_at, completed_at
		FROM scan_tasks WHERE id = ?`, id,
	).Scan(
		&task.ID, &task.FG1SampleID, &task.BGSampleID, &fg2, &task.Window,
		&task.Resolution, &task.CenterCount, &task.Mode, &task.Smoothing, &task.Status,
		&resultJSON, &errorMessage, &task.CreatedAt, &task.UpdatedAt,
		&startedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scan task %d: %w", id, err)
	}

	if fg2.Valid {
		task.FG2SampleID = fg2.Int64
	}
	if resultJSON.Valid {
		task.ResultJSON = resultJSON.String
	}
	if errorMessage.Valid {
		task.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		task.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return &task, nil
}

// List returns scan tasks, optionally filtered by status
func (r *ScanRepository) List(status string) ([]models.ScanTask, error) {
	query := `
		SELECT id, fg1_sample_id, bg_sample_id, window_width, resolution,
		       center_count, mode, status, created_at, updated_at
		FROM scan_tasks`
	var args []interface{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.ScanTask
	for rows.Next() {
		var t models.ScanTask
		if err := rows.Scan(
			&t.ID, &t.FG1SampleID, &t.BGSampleID, &t.Window, &t.Resolution,
			&t.CenterCount, &t.Mode, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkRunning transitions a task to running
func (r *ScanRepository) MarkRunning(id int64) error {
	_, err := r.db.Exec(`
		UPDATE scan_tasks
		SET status = ?, started_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.ScanStatusRunning, id)
	if err != nil {
		return fmt.Errorf("failed to mark task %d running: %w", id, err)
	}
	return nil
}

// MarkCompleted stores the result curves and transitions a task to completed
func (r *ScanRepository) MarkCompleted(id int64, resultJSON string) error {
	_, err := r.db.Exec(`
		UPDATE scan_tasks
		SET status = ?, result_json = ?,
		    completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.ScanStatusCompleted, resultJSON, id)
	if err != nil {
		return fmt.Errorf("failed to mark task %d completed: %w", id, err)
	}
	return nil
}

// MarkFailed records an error message and transitions a task to failed
func (r *ScanRepository) MarkFailed(id int64, errorMsg string) error {
	_, err := r.db.Exec(`
		UPDATE scan_tasks
		SET status = ?, error_message = ?,
		    completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, models.ScanStatusFailed, errorMsg, id)
	if err != nil {
		return fmt.Errorf("failed to mark task %d failed: %w", id, err)
	}
	return nil
}
