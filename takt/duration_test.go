package takt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDurationPipelinedFlow(t *testing.T) {
	est := EstimateDuration(12, 5, 1, 5, DefaultWorkingWeek())

	assert.Equal(t, 20, est.TotalTakts, "12 + 5 - 1 + 4*1")
	assert.Equal(t, 100, est.TotalWorkingDays)
	assert.Equal(t, 140, est.CalendarDays, "100 working days over a 5-day week")
}

func TestEstimateDurationNotEstimable(t *testing.T) {
	for _, est := range []struct {
		zones, trades int
	}{{0, 5}, {12, 0}, {0, 0}} {
		result := EstimateDuration(est.zones, est.trades, 1, 5, DefaultWorkingWeek())
		assert.Zero(t, result.TotalTakts)
		assert.Zero(t, result.TotalWorkingDays)
		assert.Zero(t, result.CalendarDays)
	}
}

func TestEstimateDurationSingleTradeIgnoresBuffer(t *testing.T) {
	for buffer := 0; buffer <= 5; buffer++ {
		est := EstimateDuration(9, 1, buffer, 3, DefaultWorkingWeek())
		assert.Equal(t, 9, est.TotalTakts, "a single trade has no handoffs, buffer=%d", buffer)
	}
}

func TestEstimateDurationZeroBufferBackToBack(t *testing.T) {
	est := EstimateDuration(10, 4, 0, 5, DefaultWorkingWeek())
	assert.Equal(t, 13, est.TotalTakts, "zones + trades - 1")
}

func TestEstimateDurationClampsInputs(t *testing.T) {
	est := EstimateDuration(10, 3, 99, 99, DefaultWorkingWeek())
	assert.Equal(t, MaxBuffer, est.BufferSize)
	assert.Equal(t, MaxTaktDays, est.TaktTimeDays)

	est = EstimateDuration(10, 3, -1, 0, DefaultWorkingWeek())
	assert.Equal(t, MinBuffer, est.BufferSize)
	assert.Equal(t, MinTaktDays, est.TaktTimeDays)
}

func TestEstimateDurationSevenDayWeek(t *testing.T) {
	week := ParseWorkingDays([]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"})
	est := EstimateDuration(12, 5, 1, 5, week)
	assert.Equal(t, 100, est.CalendarDays, "a 7-day week makes calendar days equal working days")
}

func TestEstimateDurationIgnoresRestDayEntries(t *testing.T) {
	week := map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
		time.Saturday:  false,
		time.Sunday:    false,
	}
	est := EstimateDuration(12, 5, 1, 5, week)
	assert.Equal(t, 140, est.CalendarDays, "rest days marked false must not widen the week")
}

func TestEstimateDurationEmptyCalendarDefaultsToFiveDays(t *testing.T) {
	est := EstimateDuration(12, 5, 1, 5, nil)
	assert.Equal(t, 140, est.CalendarDays)
}

func TestParseWorkingDays(t *testing.T) {
	set := ParseWorkingDays([]string{"Mon", "wednesday", "FRI", "bogus"})
	assert.Len(t, set, 3)
	assert.True(t, set[time.Monday])
	assert.True(t, set[time.Wednesday])
	assert.True(t, set[time.Friday])

	assert.Equal(t, DefaultWorkingWeek(), ParseWorkingDays(nil))
}

func TestFormatWorkingDaysRoundTrip(t *testing.T) {
	set := ParseWorkingDays([]string{"sat", "mon", "tue"})
	assert.Equal(t, "mon,tue,sat", FormatWorkingDays(set))
}

func TestAddWorkingDaysSkipsWeekend(t *testing.T) {
	// Friday 2026-03-06
	start := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	result := AddWorkingDays(start, 1, DefaultWorkingWeek())
	assert.Equal(t, time.Monday, result.Weekday())
	assert.Equal(t, 9, result.Day())

	result = AddWorkingDays(start, 5, DefaultWorkingWeek())
	assert.Equal(t, time.Friday, result.Weekday())
	assert.Equal(t, 13, result.Day())
}
