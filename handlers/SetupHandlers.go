package handlers

import (
	"backend/models"
	"backend/repository"
	"backend/takt"
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SaveTaktSetupHandler stores a project's takt parameters
// @Summary Save takt setup
// @Description Persist the takt time, buffer and working week the user accepted in the wizard
// @Tags TaktSetup
// @Accept json
// @Produce json
// @Param request body models.TaktSetup true "Takt setup"
// @Success 200 {object} models.TaktSetupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/setup/takt [post]
func SaveTaktSetupHandler(db *sql.DB) gin.HandlerFunc {
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

		var setup models.TaktSetup
		if err := c.ShouldBindJSON(&setup); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if setup.ProjectID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
			return
		}

		// Out-of-range values are clamped, not rejected
		if setup.TaktTimeDays < takt.MinTaktDays {
			setup.TaktTimeDays = takt.MinTaktDays
		}
		if setup.TaktTimeDays > takt.MaxTaktDays {
			setup.TaktTimeDays = takt.MaxTaktDays
		}
		if setup.BufferSize < takt.MinBuffer {
			setup.BufferSize = takt.MinBuffer
		}
		if setup.BufferSize > takt.MaxBuffer {
			setup.BufferSize = takt.MaxBuffer
		}

		if err := repository.SaveTaktSetup(db, setup); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save takt setup", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.TaktSetupResponse{
			Success: true,
			Message: "Takt setup saved",
			Data:    &setup,
		})
	}
}

// GetTaktSetupHandler fetches a project's takt parameters
// @Summary Get takt setup
// @Description Return the persisted takt settings of a project
// @Tags TaktSetup
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} models.TaktSetupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/setup/{project_id} [get]
func GetTaktSetupHandler(db *sql.DB) gin.HandlerFunc {
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

		setup, err := repository.GetTaktSetup(db, projectID)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "No takt setup for this project"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt setup", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.TaktSetupResponse{
			Success: true,
			Message: "Takt setup found",
			Data:    setup,
		})
	}
}
