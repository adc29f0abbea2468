package takt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones(n int) []ZoneSlot {
	zones := make([]ZoneSlot, n)
	for i := range zones {
		zones[i] = ZoneSlot{ID: string(rune('A' + i)), Name: "Zone " + string(rune('A'+i)), Sequence: i + 1}
	}
	return zones
}

func testWagons(durations []int, buffers []int) []Wagon {
	wagons := make([]Wagon, len(durations))
	for i := range wagons {
		buffer := 0
		if i < len(buffers) {
			buffer = buffers[i]
		}
		wagons[i] = Wagon{
			ID:           "W" + string(rune('1'+i)),
			TradeID:      "trade-" + string(rune('1'+i)),
			Sequence:     i + 1,
			DurationDays: durations[i],
			BufferAfter:  buffer,
		}
	}
	return wagons
}

func TestGenerateTaktGridPeriods(t *testing.T) {
	// Monday 2026-03-02
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	zones := testZones(3)
	wagons := testWagons([]int{5, 5}, []int{1, 0})

	grid := GenerateTaktGrid(zones, wagons, start, 5, DefaultWorkingWeek())
	require.Len(t, grid, 6)

	periods := make(map[string]int)
	for _, a := range grid {
		periods[a.ZoneID+"/"+a.WagonID] = a.PeriodNumber
	}

	assert.Equal(t, 1, periods["A/W1"])
	assert.Equal(t, 2, periods["B/W1"])
	assert.Equal(t, 3, periods["C/W1"])
	// second wagon starts one takt plus one buffer period later
	assert.Equal(t, 3, periods["A/W2"])
	assert.Equal(t, 5, periods["C/W2"])
}

func TestGenerateTaktGridDates(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	zones := testZones(2)
	wagons := testWagons([]int{5}, nil)

	grid := GenerateTaktGrid(zones, wagons, start, 5, DefaultWorkingWeek())
	require.Len(t, grid, 2)

	// zone A starts at the plan start, zone B one full takt (one week) later
	assert.Equal(t, start, grid[0].PlannedStart)
	assert.Equal(t, start.AddDate(0, 0, 7), grid[1].PlannedStart)
	// five working days spanning one weekend
	assert.Equal(t, start.AddDate(0, 0, 4), grid[0].PlannedEnd)
}

func TestDetectTradeStackingCleanPlan(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	grid := GenerateTaktGrid(testZones(4), testWagons([]int{5, 5, 5}, []int{0, 0, 0}), start, 5, DefaultWorkingWeek())

	conflicts := DetectTradeStacking(grid)
	assert.Empty(t, conflicts, "back-to-back wagons with duration == takt never stack")
}

func TestDetectTradeStackingOverrunningWagon(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// first wagon takes two takts per zone: it is still in the zone when the
	// second wagon arrives
	grid := GenerateTaktGrid(testZones(3), testWagons([]int{10, 5}, []int{0, 0}), start, 5, DefaultWorkingWeek())

	conflicts := DetectTradeStacking(grid)
	assert.NotEmpty(t, conflicts)
	for _, c := range conflicts {
		assert.NotEqual(t, c.WagonID1, c.WagonID2)
		assert.False(t, c.OverlapStart.After(c.OverlapEnd))
	}
}

func TestComputeFlowline(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	zones := testZones(3)
	wagons := testWagons([]int{5, 5}, []int{1, 0})
	grid := GenerateTaktGrid(zones, wagons, start, 5, DefaultWorkingWeek())

	data := ComputeFlowline(zones, wagons, grid, 5)

	require.Len(t, data.Zones, 3)
	require.Len(t, data.Wagons, 2)
	assert.Equal(t, 0, data.Zones[0].YIndex)

	first := data.Wagons[0]
	require.Len(t, first.Segments, 3)
	assert.Equal(t, 0, first.Segments[0].XStart)
	assert.Equal(t, 5, first.Segments[0].XEnd)
	assert.Equal(t, 5, first.Segments[1].XStart, "one takt period per zone advance")

	// last period is C/W2 = 5 -> 25 working days total
	assert.Equal(t, 25, data.TotalDays)
}
