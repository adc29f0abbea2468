package repository

import (
	"backend/models"
	"database/sql"
	"fmt"
	"strings"
)

// SaveTaktSetup upserts the accepted takt parameters of a project. Re-running
// the wizard's apply step overwrites the previous settings, so the operation
// is idempotent.
func SaveTaktSetup(db *sql.DB, setup models.TaktSetup) error {
	workingDays := strings.Join(setup.WorkingDays, ",")
	if workingDays == "" {
		workingDays = "mon,tue,wed,thu,fri"
	}

	_, err := db.Exec(
		`INSERT INTO project_takt_setup (project_id, takt_time_days, buffer_size, working_days, base_takt, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (project_id)
		 DO UPDATE SET takt_time_days = EXCLUDED.takt_time_days,
		               buffer_size = EXCLUDED.buffer_size,
		               working_days = EXCLUDED.working_days,
		               base_takt = EXCLUDED.base_takt,
		               updated_at = NOW()`,
		setup.ProjectID, setup.TaktTimeDays, setup.BufferSize, workingDays, setup.BaseTakt,
	)
	if err != nil {
		return fmt.Errorf("failed to save takt setup for project %d: %w", setup.ProjectID, err)
	}
	return nil
}

// GetTaktSetup fetches the stored takt parameters of a project. A project
// without a completed setup returns sql.ErrNoRows.
func GetTaktSetup(db *sql.DB, projectID int) (*models.TaktSetup, error) {
	var setup models.TaktSetup
	var workingDays string
	err := db.QueryRow(
		`SELECT project_id, takt_time_days, buffer_size, working_days, base_takt
		 FROM project_takt_setup WHERE project_id = $1`,
		projectID,
	).Scan(&setup.ProjectID, &setup.TaktTimeDays, &setup.BufferSize, &workingDays, &setup.BaseTakt)
	if err != nil {
		return nil, err
	}

	if workingDays != "" {
		setup.WorkingDays = strings.Split(workingDays, ",")
	}
	return &setup, nil
}
