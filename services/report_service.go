package services

import (
	"fmt"
	"strings"

	"backend/models"
	"backend/takt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildPlanWorkbook renders a takt plan as an Excel workbook: a summary sheet
// and a flow-line matrix with one row per zone, one column per takt period,
// each cell naming the wagon working that zone in that period.
func BuildPlanWorkbook(plan models.TaktPlanGorm, assignments []takt.Assignment) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	summaryRows := [][]interface{}{
		{"Plan", plan.Name},
		{"Status", plan.Status},
		{"Takt time (days)", plan.TaktTimeDays},
		{"Buffer (periods)", plan.BufferSize},
		{"Zones", plan.NumZones},
		{"Trades", plan.NumTrades},
		{"Total periods", plan.TotalPeriods},
		{"Start", plan.StartDate.Format("2006-01-02")},
		{"End", plan.EndDate.Format("2006-01-02")},
		{"Working days", plan.WorkingDays},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetCellValue(summary, cell, row[0]); err != nil {
			return nil, fmt.Errorf("failed to write summary label: %w", err)
		}
		cell, _ = excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(summary, cell, row[1]); err != nil {
			return nil, fmt.Errorf("failed to write summary value: %w", err)
		}
	}

	matrix := "Flowline"
	if _, err := f.NewSheet(matrix); err != nil {
		return nil, fmt.Errorf("failed to create flowline sheet: %w", err)
	}

	wagonNames := make(map[string]string, len(plan.Wagons))
	for _, w := range plan.Wagons {
		name := w.Name
		if name == "" {
			name = w.TradeID
		}
		wagonNames[w.ID] = name
	}

	zoneRow := make(map[string]int, len(plan.Zones))
	f.SetCellValue(matrix, "A1", "Zone")
	for i, z := range plan.Zones {
		zoneRow[z.ID] = i + 2
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetCellValue(matrix, cell, z.Name)
	}
	for p := 1; p <= plan.TotalPeriods; p++ {
		cell, _ := excelize.CoordinatesToCellName(p+1, 1)
		f.SetCellValue(matrix, cell, fmt.Sprintf("T%d", p))
	}

	for _, a := range assignments {
		row, ok := zoneRow[a.ZoneID]
		if !ok || a.PeriodNumber < 1 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(a.PeriodNumber+1, row)
		f.SetCellValue(matrix, cell, wagonNames[a.WagonID])
	}

	return f, nil
}

// BuildPlanPDF renders a one-page takt plan summary for site distribution.
func BuildPlanPDF(plan models.TaktPlanGorm, conflicts []takt.StackingConflict) (*gofpdf.Fpdf, error) {
	titleCaser := cases.Title(language.Und)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Takt Plan Summary", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, plan.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s    Version: %d", titleCaser.String(plan.Status), plan.Version), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Takt time", fmt.Sprintf("%d working days", plan.TaktTimeDays)},
		{"Buffer", fmt.Sprintf("%d takt periods", plan.BufferSize)},
		{"Zones", fmt.Sprintf("%d", plan.NumZones)},
		{"Trades", fmt.Sprintf("%d", plan.NumTrades)},
		{"Total periods", fmt.Sprintf("%d", plan.TotalPeriods)},
		{"Start date", plan.StartDate.Format("02 Jan 2006")},
		{"End date", plan.EndDate.Format("02 Jan 2006")},
		{"Working week", strings.ToUpper(plan.WorkingDays)},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(80, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Trade sequence", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, w := range plan.Wagons {
		name := w.Name
		if name == "" {
			name = w.TradeID
		}
		line := fmt.Sprintf("%d. %s  (%d days", w.Sequence, name, w.DurationDays)
		if w.CrewSize > 0 {
			line += fmt.Sprintf(", crew %d", w.CrewSize)
		}
		if w.BufferAfter > 0 {
			line += fmt.Sprintf(", +%d buffer", w.BufferAfter)
		}
		line += ")"
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	if len(conflicts) == 0 {
		pdf.SetTextColor(0, 120, 0)
		pdf.CellFormat(0, 8, "No trade stacking detected", "", 1, "L", false, 0, "")
	} else {
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(0, 8, fmt.Sprintf("Trade stacking: %d conflicts", len(conflicts)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for i, c := range conflicts {
			if i >= 10 {
				pdf.CellFormat(0, 5, fmt.Sprintf("... and %d more", len(conflicts)-10), "", 1, "L", false, 0, "")
				break
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("Zone %s: wagons %s and %s overlap (periods %d/%d)",
				c.ZoneID, c.WagonID1, c.WagonID2, c.Period1, c.Period2), "", 1, "L", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)

	if pdf.Err() {
		return nil, fmt.Errorf("failed to build plan PDF: %v", pdf.Error())
	}
	return pdf, nil
}
