package repository

import (
	"backend/models"
	"backend/utils"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// BulkInsertLocations persists a flattened LBS batch for a project inside one
// transaction. Rows are inserted in sort order; a row's parent_name is
// resolved first against rows created earlier in the same batch, then against
// locations already stored for the project. Parents always precede children
// in engine output, so resolution in submission order never dangles.
func BulkInsertLocations(db *sql.DB, projectID int, rows []models.FlatLocationRow) ([]int, error) {
	sorted := make([]models.FlatLocationRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	ctx, cancel := utils.GetBulkQueryContext(nil)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for bulk locations: %w", err)
	}
	defer tx.Rollback()

	insertedByName := make(map[string]int, len(sorted))
	ids := make([]int, 0, len(sorted))

	for _, row := range sorted {
		var parentID sql.NullInt64
		if name := strings.TrimSpace(row.ParentName); name != "" {
			id, ok := insertedByName[name]
			if !ok {
				// Parent was applied in an earlier batch; resolve by name,
				// falling back to a numeric id reference.
				err := tx.QueryRowContext(ctx,
					`SELECT id FROM location WHERE project_id = $1 AND name = $2 ORDER BY id ASC LIMIT 1`,
					projectID, name,
				).Scan(&id)
				if err == sql.ErrNoRows {
					if _, scanErr := fmt.Sscanf(name, "%d", &id); scanErr != nil {
						return nil, fmt.Errorf("parent %q not found for location %q", name, row.Name)
					}
				} else if err != nil {
					return nil, fmt.Errorf("failed to resolve parent %q: %w", name, err)
				}
			}
			parentID = sql.NullInt64{Int64: int64(id), Valid: true}
		}

		var id int
		err = tx.QueryRowContext(ctx,
			`INSERT INTO location (project_id, name, location_type, parent_id, phase, area_sqm, sort_order, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			 RETURNING id`,
			projectID, row.Name, row.LocationType, parentID, nullString(row.Phase), row.AreaSqm, row.SortOrder,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert location %q: %w", row.Name, err)
		}

		// First writer wins: duplicate names in one batch keep pointing at
		// the earliest row, matching resolution by ORDER BY id.
		if _, exists := insertedByName[row.Name]; !exists {
			insertedByName[row.Name] = id
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk locations: %w", err)
	}
	return ids, nil
}

// GetLocationsByProject returns all locations of a project in LBS order.
func GetLocationsByProject(db *sql.DB, projectID int) ([]models.Location, error) {
	ctx, cancel := utils.GetDefaultQueryContext(nil)
	defer cancel()

	rows, err := db.QueryContext(ctx,
		`SELECT id, project_id, name, location_type, parent_id, COALESCE(phase, ''), COALESCE(area_sqm, 0), sort_order
		 FROM location WHERE project_id = $1 ORDER BY sort_order ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations for project %d: %w", projectID, err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		var parentID sql.NullInt64
		if err := rows.Scan(&loc.ID, &loc.ProjectID, &loc.Name, &loc.LocationType, &parentID, &loc.Phase, &loc.AreaSqm, &loc.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		if parentID.Valid {
			id := int(parentID.Int64)
			loc.ParentID = &id
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// CountZonesByProject counts zone-type locations for a project, the figure
// the duration estimator consumes.
func CountZonesByProject(db *sql.DB, projectID int) (int, error) {
	ctx, cancel := utils.GetQueryContext(nil, utils.FastQueryTimeout)
	defer cancel()

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM location WHERE project_id = $1 AND location_type = 'zone'`,
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count zones for project %d: %w", projectID, err)
	}
	return count, nil
}

// DeleteLocation removes a location row by id.
func DeleteLocation(db *sql.DB, locationID int) error {
	result, err := db.Exec(`DELETE FROM location WHERE id = $1`, locationID)
	if err != nil {
		return fmt.Errorf("failed to delete location %d: %w", locationID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("location %d not found", locationID)
	}
	return nil
}

// GetLocationByID fetches a single location row.
func GetLocationByID(db *sql.DB, locationID int) (*models.Location, error) {
	var loc models.Location
	var parentID sql.NullInt64
	err := db.QueryRow(
		`SELECT id, project_id, name, location_type, parent_id, COALESCE(phase, ''), COALESCE(area_sqm, 0), sort_order
		 FROM location WHERE id = $1`,
		locationID,
	).Scan(&loc.ID, &loc.ProjectID, &loc.Name, &loc.LocationType, &parentID, &loc.Phase, &loc.AreaSqm, &loc.SortOrder)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch location %d: %w", locationID, err)
	}
	if parentID.Valid {
		id := int(parentID.Int64)
		loc.ParentID = &id
	}
	return &loc, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
