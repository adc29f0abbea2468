package handlers

import (
	"backend/models"
	"backend/takt"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ==================== TAKT PLANNING WIZARD ====================

// TaktLBSPreview generates a Location Breakdown Structure preview
// @Summary Preview location breakdown
// @Description Expand a building configuration into a flattened location breakdown structure without persisting it
// @Tags TaktPlanning
// @Accept json
// @Produce json
// @Param request body models.LBSPreviewRequest true "Building configuration"
// @Success 200 {object} models.LBSPreviewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/lbs/preview [post]
func TaktLBSPreview(db *sql.DB) gin.HandlerFunc {
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

		var req models.LBSPreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// An unknown building type yields an empty breakdown, not an error.
		// The wizard shows "0 locations" and lets the user correct the type.
		forest := takt.GenerateLocationBreakdown(req.Configuration)
		rows := takt.FlattenLocations(forest)
		counts := takt.CountTemplateLocations(forest)

		c.JSON(http.StatusOK, models.LBSPreviewResponse{
			Success: true,
			Rows:    rows,
			Counts:  counts,
		})
	}
}

// TaktRecommendationHandler recommends a takt time and buffer
// @Summary Recommend takt time
// @Description Propose a takt time, range and buffer size for a building configuration
// @Tags TaktPlanning
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Building configuration"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/recommendation [post]
func TaktRecommendationHandler(db *sql.DB) gin.HandlerFunc {
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

		var req models.RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		baseTakt := takt.BaseTaktDays(req.Configuration.BuildingType)
		recommendation := takt.RecommendTakt(req.Configuration, baseTakt)
		buffer := takt.RecommendBuffer(req.Configuration)

		c.JSON(http.StatusOK, models.RecommendationResponse{
			Success:      true,
			Takt:         recommendation,
			BufferSize:   buffer,
			BaseTaktDays: baseTakt,
		})
	}
}

// TaktEstimateHandler estimates flow-line duration
// @Summary Estimate plan duration
// @Description Compute total takts, working days and calendar days for a zone count and trade sequence
// @Tags TaktPlanning
// @Accept json
// @Produce json
// @Param request body models.EstimateRequest true "Estimate parameters"
// @Success 200 {object} models.EstimateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/estimate [post]
func TaktEstimateHandler(db *sql.DB) gin.HandlerFunc {
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

		var req models.EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		workingDays := takt.ParseWorkingDays(req.WorkingDays)
		estimate := takt.EstimateDuration(req.ZoneCount, req.TradeCount, req.BufferSize, req.TaktTimeDays, workingDays)

		c.JSON(http.StatusOK, models.EstimateResponse{
			Success:   true,
			Estimable: estimate.TotalTakts > 0,
			Estimate:  estimate,
		})
	}
}

// GetTaktFactors lists the recommendation factor tables
// @Summary List takt factors
// @Description Return the structural, MEP, foundation and ground condition factor tables the wizard dropdowns are built from
// @Tags TaktPlanning
// @Produce json
// @Success 200 {object} object
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/factors [get]
func GetTaktFactors(db *sql.DB) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"structural_system": takt.StructuralSystemFactors(),
			"mep_complexity":    takt.MEPComplexityFactors(),
			"foundation_type":   takt.FoundationTypeFactors(),
			"ground_condition":  takt.GroundConditionFactors(),
		})
	}
}
