package handlers

import (
	"backend/models"
	"backend/repository"
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ==================== LOCATION CRUD OPERATIONS ====================

// BulkCreateLocations persists a flattened location breakdown
// @Summary Apply location breakdown
// @Description Persist the previewed location rows for a project in one transaction
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body models.BulkLocationRequest true "Flattened location rows"
// @Success 201 {object} models.BulkLocationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/locations/bulk [post]
func BulkCreateLocations(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("Authorization")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id header is missing"})
			return
		}
		_, userName, err := GetSessionDetails(db, sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session", "details": err.Error()})
			return
		}

		var req models.BulkLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.ProjectID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
			return
		}
		if len(req.Rows) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rows must not be empty"})
			return
		}

		// Check if project exists
		var projectExists bool
		err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM project WHERE project_id = $1)", req.ProjectID).Scan(&projectExists)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !projectExists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
			return
		}

		ids, err := repository.BulkInsertLocations(db, req.ProjectID, req.Rows)
		if err != nil {
			log.Printf("[LOCATIONS] bulk insert failed for project %d: %v", req.ProjectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create locations", "details": err.Error()})
			return
		}

		log.Printf("[LOCATIONS] %s applied %d locations to project %d", userName, len(ids), req.ProjectID)

		c.JSON(http.StatusCreated, models.BulkLocationResponse{
			Success: true,
			Message: "Locations created successfully",
			Created: len(ids),
			Ids:     ids,
		})
	}
}

// GetLocations lists a project's locations
// @Summary Get project locations
// @Description List all locations of a project ordered by sort order
// @Tags Locations
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/locations/{project_id} [get]
func GetLocations(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("Authorization")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id header is missing"})
			return
		}
		_, _, err := GetSessionDetails(db, sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session", "details": err.Error()})
			return
		}

		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil || projectID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		locations, err := repository.GetLocationsByProject(db, projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations", "details": err.Error()})
			return
		}

		zones, err := repository.CountZonesByProject(db, projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count zones", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"locations": locations,
			"total":     len(locations),
			"zones":     zones,
		})
	}
}

// DeleteLocationHandler removes a single location
// @Summary Delete location
// @Description Delete one location row by ID
// @Tags Locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/location_delete/{id} [delete]
func DeleteLocationHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("Authorization")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id header is missing"})
			return
		}
		_, userName, err := GetSessionDetails(db, sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session", "details": err.Error()})
			return
		}

		locationID, err := strconv.Atoi(c.Param("id"))
		if err != nil || locationID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
			return
		}

		location, err := repository.GetLocationByID(db, locationID)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location", "details": err.Error()})
			return
		}

		if err := repository.DeleteLocation(db, locationID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location", "details": err.Error()})
			return
		}

		log.Printf("[LOCATIONS] %s deleted location %d (%s) from project %d", userName, locationID, location.Name, location.ProjectID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Location deleted"})
	}
}
