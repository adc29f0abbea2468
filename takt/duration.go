package takt

import (
	"time"

	"backend/models"
)

// EstimateDuration computes the flow-line duration of tradeCount wagons
// moving through zoneCount zones at the given takt time.
//
//	totalTakts       = zones + trades - 1 + (trades-1) * buffer
//	totalWorkingDays = totalTakts * taktTimeDays
//	calendarDays     = ceil(totalWorkingDays / workingDaysPerWeek * 7)
//
// A single trade has no handoffs, so buffers never apply to it and its total
// is exactly zoneCount periods. Zero zones or zero trades returns an all-zero
// estimate: the caller must present that as "not yet estimable" rather than a
// computed zero-day schedule.
func EstimateDuration(zoneCount, tradeCount, bufferSize, taktTimeDays int, workingDays map[time.Weekday]bool) models.DurationEstimate {
	if zoneCount < 0 {
		zoneCount = 0
	}
	if tradeCount < 0 {
		tradeCount = 0
	}
	bufferSize = clampInt(bufferSize, MinBuffer, MaxBuffer)
	taktTimeDays = clampInt(taktTimeDays, MinTaktDays, MaxTaktDays)

	estimate := models.DurationEstimate{
		ZoneCount:    zoneCount,
		TradeCount:   tradeCount,
		BufferSize:   bufferSize,
		TaktTimeDays: taktTimeDays,
	}
	if zoneCount == 0 || tradeCount == 0 {
		return estimate
	}

	// Only weekdays explicitly marked working count toward the week length;
	// entries set to false are rest days.
	daysPerWeek := 0
	for _, working := range workingDays {
		if working {
			daysPerWeek++
		}
	}
	if daysPerWeek < 1 {
		daysPerWeek = len(DefaultWorkingWeek())
	}
	if daysPerWeek > 7 {
		daysPerWeek = 7
	}

	estimate.TotalTakts = zoneCount + tradeCount - 1 + (tradeCount-1)*bufferSize
	estimate.TotalWorkingDays = estimate.TotalTakts * taktTimeDays
	estimate.CalendarDays = (estimate.TotalWorkingDays*7 + daysPerWeek - 1) / daysPerWeek

	return estimate
}
