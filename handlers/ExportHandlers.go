package handlers

import (
	"backend/services"
	"backend/storage"
	"backend/takt"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ==================== TAKT PLAN EXPORTS ====================

// ExportPlanExcel exports a plan as an Excel workbook
// @Summary Export plan to Excel
// @Description Download a takt plan as an xlsx workbook with a summary sheet and the flow-line matrix
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Plan ID"
// @Success 200 {file} file "Excel file"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/export/excel [get]
func ExportPlanExcel(db *sql.DB) gin.HandlerFunc {
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

		f, err := services.BuildPlanWorkbook(plan, assignments)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook", "details": err.Error()})
			return
		}

		filename := fmt.Sprintf("takt_plan_%s.xlsx", sanitizeFilename(plan.Name))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}

// ExportPlanPDF exports a plan summary as PDF
// @Summary Export plan to PDF
// @Description Download a one-page takt plan summary PDF including the trade stacking check result
// @Tags Exports
// @Produce application/pdf
// @Param id path string true "Plan ID"
// @Success 200 {file} file "PDF file"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/takt/plan/{id}/export/pdf [get]
func ExportPlanPDF(db *sql.DB) gin.HandlerFunc {
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

		pdf, err := services.BuildPlanPDF(plan, conflicts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build PDF", "details": err.Error()})
			return
		}

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=takt_plan_%s.pdf", sanitizeFilename(plan.Name)))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	for _, ch := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, ch, "-")
	}
	if name == "" {
		name = "plan"
	}
	return name
}
