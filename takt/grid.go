package takt

import (
	"sort"
	"time"
)

// ZoneSlot is one zone of a takt plan, in flow order.
type ZoneSlot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sequence int     `json:"sequence"`
	AreaSqm  float64 `json:"area_sqm,omitempty"`
}

// Wagon is one trade work package moving through all zones.
type Wagon struct {
	ID           string `json:"id"`
	TradeID      string `json:"trade_id"`
	Name         string `json:"name"`
	Sequence     int    `json:"sequence"`
	DurationDays int    `json:"duration_days"`
	CrewSize     int    `json:"crew_size,omitempty"`
	BufferAfter  int    `json:"buffer_after"`
}

// Assignment places one wagon in one zone for one takt period.
type Assignment struct {
	ZoneID       string    `json:"zone_id"`
	WagonID      string    `json:"wagon_id"`
	PeriodNumber int       `json:"period_number"`
	PlannedStart time.Time `json:"planned_start"`
	PlannedEnd   time.Time `json:"planned_end"`
}

// StackingConflict reports two wagons active in the same zone at overlapping
// dates.
type StackingConflict struct {
	ZoneID       string    `json:"zone_id"`
	WagonID1     string    `json:"wagon_1"`
	WagonID2     string    `json:"wagon_2"`
	Period1      int       `json:"period_1"`
	Period2      int       `json:"period_2"`
	OverlapStart time.Time `json:"overlap_start"`
	OverlapEnd   time.Time `json:"overlap_end"`
}

// GenerateTaktGrid assigns every zone/wagon pair its takt period and planned
// dates. For zone z (1-indexed) and wagon w (1-indexed):
//
//	period = z + (w - 1) + sum of buffers before w
//	start  = planStart + (period - 1) * taktTime working days
//	end    = start + wagon duration working days
func GenerateTaktGrid(zones []ZoneSlot, wagons []Wagon, startDate time.Time, taktTimeDays int, workingDays map[time.Weekday]bool) []Assignment {
	if taktTimeDays < MinTaktDays {
		taktTimeDays = MinTaktDays
	}
	if len(workingDays) == 0 {
		workingDays = DefaultWorkingWeek()
	}

	sortedZones := make([]ZoneSlot, len(zones))
	copy(sortedZones, zones)
	sort.Slice(sortedZones, func(i, j int) bool { return sortedZones[i].Sequence < sortedZones[j].Sequence })

	sortedWagons := make([]Wagon, len(wagons))
	copy(sortedWagons, wagons)
	sort.Slice(sortedWagons, func(i, j int) bool { return sortedWagons[i].Sequence < sortedWagons[j].Sequence })

	// Cumulative buffer periods before each wagon.
	bufferOffsets := make([]int, len(sortedWagons))
	for i := 1; i < len(sortedWagons); i++ {
		bufferOffsets[i] = bufferOffsets[i-1] + sortedWagons[i-1].BufferAfter
	}

	assignments := make([]Assignment, 0, len(sortedZones)*len(sortedWagons))
	for zi, zone := range sortedZones {
		for wi, wagon := range sortedWagons {
			period := (zi + 1) + wi + bufferOffsets[wi]

			daysOffset := (period - 1) * taktTimeDays
			plannedStart := AddWorkingDays(startDate, daysOffset, workingDays)

			duration := wagon.DurationDays
			if duration < 1 {
				duration = taktTimeDays
			}
			plannedEnd := AddWorkingDays(plannedStart, duration-1, workingDays)

			assignments = append(assignments, Assignment{
				ZoneID:       zone.ID,
				WagonID:      wagon.ID,
				PeriodNumber: period,
				PlannedStart: plannedStart,
				PlannedEnd:   plannedEnd,
			})
		}
	}
	return assignments
}

// DetectTradeStacking finds zones where two wagons overlap in time. A valid
// takt plan has none.
func DetectTradeStacking(assignments []Assignment) []StackingConflict {
	byZone := make(map[string][]Assignment)
	zoneOrder := make([]string, 0)
	for _, a := range assignments {
		if _, seen := byZone[a.ZoneID]; !seen {
			zoneOrder = append(zoneOrder, a.ZoneID)
		}
		byZone[a.ZoneID] = append(byZone[a.ZoneID], a)
	}

	var conflicts []StackingConflict
	for _, zoneID := range zoneOrder {
		zoneAssigns := byZone[zoneID]
		for i, a1 := range zoneAssigns {
			for _, a2 := range zoneAssigns[i+1:] {
				if !a1.PlannedStart.After(a2.PlannedEnd) && !a2.PlannedStart.After(a1.PlannedEnd) {
					conflicts = append(conflicts, StackingConflict{
						ZoneID:       zoneID,
						WagonID1:     a1.WagonID,
						WagonID2:     a2.WagonID,
						Period1:      a1.PeriodNumber,
						Period2:      a2.PeriodNumber,
						OverlapStart: laterTime(a1.PlannedStart, a2.PlannedStart),
						OverlapEnd:   earlierTime(a1.PlannedEnd, a2.PlannedEnd),
					})
				}
			}
		}
	}
	return conflicts
}

func laterTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// FlowlineSegment is one wagon pass through one zone on the flow-line chart.
type FlowlineSegment struct {
	ZoneIndex int `json:"zone_index"`
	XStart    int `json:"x_start"`
	XEnd      int `json:"x_end"`
	Y         int `json:"y"`
}

// FlowlineWagon is the polyline of one wagon.
type FlowlineWagon struct {
	WagonID  string            `json:"wagon_id"`
	TradeID  string            `json:"trade_id"`
	Name     string            `json:"name"`
	Segments []FlowlineSegment `json:"segments"`
}

// FlowlineZone labels one horizontal band of the chart.
type FlowlineZone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	YIndex int    `json:"y_index"`
}

// FlowlineData is the render-ready flow-line chart payload.
type FlowlineData struct {
	Zones        []FlowlineZone  `json:"zones"`
	Wagons       []FlowlineWagon `json:"wagons"`
	TotalDays    int             `json:"total_days"`
	TaktTimeDays int             `json:"takt_time_days"`
}

// ComputeFlowline turns a takt grid into chart data: one band per zone, one
// segmented line per wagon with x in working days from plan start.
func ComputeFlowline(zones []ZoneSlot, wagons []Wagon, assignments []Assignment, taktTimeDays int) FlowlineData {
	sortedZones := make([]ZoneSlot, len(zones))
	copy(sortedZones, zones)
	sort.Slice(sortedZones, func(i, j int) bool { return sortedZones[i].Sequence < sortedZones[j].Sequence })

	data := FlowlineData{TaktTimeDays: taktTimeDays}
	zoneIndex := make(map[string]int, len(sortedZones))
	for i, z := range sortedZones {
		zoneIndex[z.ID] = i
		data.Zones = append(data.Zones, FlowlineZone{ID: z.ID, Name: z.Name, YIndex: i})
	}

	sortedWagons := make([]Wagon, len(wagons))
	copy(sortedWagons, wagons)
	sort.Slice(sortedWagons, func(i, j int) bool { return sortedWagons[i].Sequence < sortedWagons[j].Sequence })

	maxPeriod := 0
	byWagon := make(map[string][]Assignment)
	for _, a := range assignments {
		byWagon[a.WagonID] = append(byWagon[a.WagonID], a)
		if a.PeriodNumber > maxPeriod {
			maxPeriod = a.PeriodNumber
		}
	}

	for _, wagon := range sortedWagons {
		wagonAssigns := byWagon[wagon.ID]
		sort.Slice(wagonAssigns, func(i, j int) bool {
			return wagonAssigns[i].PeriodNumber < wagonAssigns[j].PeriodNumber
		})

		line := FlowlineWagon{WagonID: wagon.ID, TradeID: wagon.TradeID, Name: wagon.Name}
		for _, a := range wagonAssigns {
			y := zoneIndex[a.ZoneID]
			xStart := (a.PeriodNumber - 1) * taktTimeDays
			duration := wagon.DurationDays
			if duration < 1 {
				duration = taktTimeDays
			}
			line.Segments = append(line.Segments, FlowlineSegment{
				ZoneIndex: y,
				XStart:    xStart,
				XEnd:      xStart + duration,
				Y:         y,
			})
		}
		data.Wagons = append(data.Wagons, line)
	}

	data.TotalDays = maxPeriod * taktTimeDays
	return data
}
