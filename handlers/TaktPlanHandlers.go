package handlers

import (
	"backend/models"
	"backend/repository"
	"backend/storage"
	"backend/takt"
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ==================== TAKT PLAN CRUD OPERATIONS ====================

// planToEngine converts a stored plan into the zone and wagon slices the takt
// engine expects.
func planToEngine(plan models.TaktPlanGorm) ([]takt.ZoneSlot, []takt.Wagon) {
	zones := make([]takt.ZoneSlot, 0, len(plan.Zones))
	for _, z := range plan.Zones {
		zones = append(zones, takt.ZoneSlot{
			ID:       z.ID,
			Name:     z.Name,
			Sequence: z.Sequence,
			AreaSqm:  z.AreaSqm,
		})
	}

	wagons := make([]takt.Wagon, 0, len(plan.Wagons))
	for _, w := range plan.Wagons {
		wagons = append(wagons, takt.Wagon{
			ID:           w.ID,
			TradeID:      w.TradeID,
			Name:         w.Name,
			Sequence:     w.Sequence,
			DurationDays: w.DurationDays,
			CrewSize:     w.CrewSize,
			BufferAfter:  w.BufferAfter,
		})
	}
	return zones, wagons
}

func loadPlan(gormDB *gorm.DB, planID string) (models.TaktPlanGorm, error) {
	var plan models.TaktPlanGorm
	err := gormDB.Preload("Zones", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence ASC")
	}).Preload("Wagons", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence ASC")
	}).First(&plan, "id = ?", planID).Error
	return plan, err
}

// CreateTaktPlan creates a takt plan
// @Summary Create takt plan
// @Description Create a takt plan from applied zone locations and a trade wagon sequence
// @Tags TaktPlans
// @Accept json
// @Produce json
// @Param request body models.CreateTaktPlanRequest true "Plan creation request"
// @Success 201 {object} models.TaktPlanGorm
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/plans [post]
func CreateTaktPlan(db *sql.DB) gin.HandlerFunc {
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

		var req models.CreateTaktPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.ProjectID <= 0 || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_id and name are required"})
			return
		}
		if len(req.LocationIDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location_ids must not be empty"})
			return
		}
		if len(req.Wagons) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wagons must not be empty"})
			return
		}

		taktTime := req.TaktTimeDays
		if taktTime < takt.MinTaktDays {
			taktTime = takt.MinTaktDays
		}
		if taktTime > takt.MaxTaktDays {
			taktTime = takt.MaxTaktDays
		}
		buffer := req.BufferSize
		if buffer < takt.MinBuffer {
			buffer = takt.MinBuffer
		}
		if buffer > takt.MaxBuffer {
			buffer = takt.MaxBuffer
		}

		planID := uuid.New().String()

		// Zones take their flow sequence from the order of location_ids
		zones := make([]models.TaktPlanZoneGorm, 0, len(req.LocationIDs))
		for i, locationID := range req.LocationIDs {
			location, err := repository.GetLocationByID(db, locationID)
			if err != nil {
				if err == sql.ErrNoRows {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Location does not exist", "details": strconv.Itoa(locationID)})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location", "details": err.Error()})
				return
			}
			zones = append(zones, models.TaktPlanZoneGorm{
				ID:         uuid.New().String(),
				PlanID:     planID,
				LocationID: location.ID,
				Name:       location.Name,
				Sequence:   i + 1,
				AreaSqm:    location.AreaSqm,
			})
		}

		wagons := make([]models.TaktPlanWagonGorm, 0, len(req.Wagons))
		for i, w := range req.Wagons {
			sequence := w.Sequence
			if sequence <= 0 {
				sequence = i + 1
			}
			duration := w.DurationDays
			if duration < 1 {
				duration = taktTime
			}
			bufferAfter := w.BufferAfter
			if bufferAfter < 0 {
				bufferAfter = buffer
			}
			wagons = append(wagons, models.TaktPlanWagonGorm{
				ID:           uuid.New().String(),
				PlanID:       planID,
				TradeID:      w.TradeID,
				Name:         w.Name,
				Sequence:     sequence,
				DurationDays: duration,
				CrewSize:     w.CrewSize,
				BufferAfter:  bufferAfter,
			})
		}

		workingDays := takt.ParseWorkingDays(req.WorkingDays)
		estimate := takt.EstimateDuration(len(zones), len(wagons), buffer, taktTime, workingDays)

		startDate := req.StartDate
		if startDate.IsZero() {
			startDate = time.Now()
		}
		endDate := startDate
		if estimate.TotalWorkingDays > 0 {
			endDate = takt.AddWorkingDays(startDate, estimate.TotalWorkingDays-1, workingDays)
		}

		plan := models.TaktPlanGorm{
			ID:           planID,
			ProjectID:    req.ProjectID,
			Name:         req.Name,
			Version:      1,
			Status:       "draft",
			TaktTimeDays: taktTime,
			BufferSize:   buffer,
			NumZones:     len(zones),
			NumTrades:    len(wagons),
			TotalPeriods: estimate.TotalTakts,
			StartDate:    startDate,
			EndDate:      endDate,
			WorkingDays:  takt.FormatWorkingDays(workingDays),
			GeneratedBy:  userName,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
			Zones:        zones,
			Wagons:       wagons,
		}

		gormDB := storage.GetGormDB()
		if err := gormDB.Create(&plan).Error; err != nil {
			log.Printf("[TAKT PLAN] create failed for project %d: %v", req.ProjectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create takt plan", "details": err.Error()})
			return
		}

		log.Printf("[TAKT PLAN] %s created plan %s for project %d (%d zones, %d wagons, %d periods)",
			userName, planID, req.ProjectID, len(zones), len(wagons), estimate.TotalTakts)

		c.JSON(http.StatusCreated, plan)
	}
}

// GetTaktPlans lists a project's takt plans
// @Summary Get takt plans
// @Description List all takt plans of a project with zones and wagons
// @Tags TaktPlans
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/takt/plans/{project_id} [get]
func GetTaktPlans(db *sql.DB) gin.HandlerFunc {
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

		var plans []models.TaktPlanGorm
		gormDB := storage.GetGormDB()
		err = gormDB.Preload("Zones", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).Preload("Wagons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).Where("project_id = ?", projectID).Order("created_at DESC").Find(&plans).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plans", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "plans": plans, "total": len(plans)})
	}
}

// GetTaktPlanByID fetches one takt plan
// @Summary Get takt plan
// @Description Fetch a single takt plan with zones and wagons
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.TaktPlanGorm
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id} [get]
func GetTaktPlanByID(db *sql.DB) gin.HandlerFunc {
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

		plan, err := loadPlan(storage.GetGormDB(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

// ActivateTaktPlan marks a plan as the active baseline
// @Summary Activate takt plan
// @Description Set a plan to active and supersede any previously active plan of the same project
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} object
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/activate [post]
func ActivateTaktPlan(db *sql.DB) gin.HandlerFunc {
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

		planID := c.Param("id")
		gormDB := storage.GetGormDB()

		var plan models.TaktPlanGorm
		if err := gormDB.First(&plan, "id = ?", planID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		err = gormDB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.TaktPlanGorm{}).
				Where("project_id = ? AND status = ? AND id <> ?", plan.ProjectID, "active", planID).
				Updates(map[string]interface{}{"status": "superseded", "updated_at": time.Now()}).Error; err != nil {
				return err
			}
			return tx.Model(&models.TaktPlanGorm{}).
				Where("id = ?", planID).
				Updates(map[string]interface{}{"status": "active", "updated_at": time.Now()}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate takt plan", "details": err.Error()})
			return
		}

		log.Printf("[TAKT PLAN] %s activated plan %s for project %d", userName, planID, plan.ProjectID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Plan activated", "id": planID})
	}
}

// DeleteTaktPlan removes a plan with its zones and wagons
// @Summary Delete takt plan
// @Description Delete a takt plan and all of its zones and wagons
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} object
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id} [delete]
func DeleteTaktPlan(db *sql.DB) gin.HandlerFunc {
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

		planID := c.Param("id")
		gormDB := storage.GetGormDB()

		var plan models.TaktPlanGorm
		if err := gormDB.First(&plan, "id = ?", planID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		err = gormDB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("plan_id = ?", planID).Delete(&models.TaktPlanWagonGorm{}).Error; err != nil {
				return err
			}
			if err := tx.Where("plan_id = ?", planID).Delete(&models.TaktPlanZoneGorm{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.TaktPlanGorm{}, "id = ?", planID).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete takt plan", "details": err.Error()})
			return
		}

		log.Printf("[TAKT PLAN] %s deleted plan %s from project %d", userName, planID, plan.ProjectID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Plan deleted"})
	}
}

// GetTaktPlanGrid computes the period grid of a plan
// @Summary Get takt grid
// @Description Assign every zone and wagon its takt period with planned start and end dates
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} object
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/grid [get]
func GetTaktPlanGrid(db *sql.DB) gin.HandlerFunc {
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

		plan, err := loadPlan(storage.GetGormDB(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		zones, wagons := planToEngine(plan)
		workingDays := takt.ParseWorkingDays(strings.Split(plan.WorkingDays, ","))
		assignments := takt.GenerateTaktGrid(zones, wagons, plan.StartDate, plan.TaktTimeDays, workingDays)

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"plan_id":     plan.ID,
			"assignments": assignments,
			"total":       len(assignments),
		})
	}
}

// ValidateTaktPlan checks a plan for trade stacking
// @Summary Validate takt plan
// @Description Detect zones where two trade wagons would work at overlapping dates
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} object
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/validate [post]
func ValidateTaktPlan(db *sql.DB) gin.HandlerFunc {
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

		plan, err := loadPlan(storage.GetGormDB(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		zones, wagons := planToEngine(plan)
		workingDays := takt.ParseWorkingDays(strings.Split(plan.WorkingDays, ","))
		assignments := takt.GenerateTaktGrid(zones, wagons, plan.StartDate, plan.TaktTimeDays, workingDays)
		conflicts := takt.DetectTradeStacking(assignments)

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"plan_id":   plan.ID,
			"valid":     len(conflicts) == 0,
			"conflicts": conflicts,
		})
	}
}

// GetTaktPlanFlowline returns flow-line chart data
// @Summary Get flow-line chart
// @Description Compute the render-ready flow-line chart payload of a plan
// @Tags TaktPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} takt.FlowlineData
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/flowline [get]
func GetTaktPlanFlowline(db *sql.DB) gin.HandlerFunc {
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

		plan, err := loadPlan(storage.GetGormDB(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Takt plan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch takt plan", "details": err.Error()})
			return
		}

		zones, wagons := planToEngine(plan)
		workingDays := takt.ParseWorkingDays(strings.Split(plan.WorkingDays, ","))
		assignments := takt.GenerateTaktGrid(zones, wagons, plan.StartDate, plan.TaktTimeDays, workingDays)
		flowline := takt.ComputeFlowline(zones, wagons, assignments, plan.TaktTimeDays)

		c.JSON(http.StatusOK, gin.H{"success": true, "plan_id": plan.ID, "flowline": flowline})
	}
}
