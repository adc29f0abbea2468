package takt

import (
	"strings"
	"time"
)

var weekdayCodes = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// DefaultWorkingWeek is Monday through Friday.
func DefaultWorkingWeek() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// ParseWorkingDays converts day codes ("mon".."sun", full names accepted) to
// a weekday set. Unknown codes are skipped; an empty result falls back to the
// default Monday-Friday week.
func ParseWorkingDays(codes []string) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if len(code) > 3 {
			code = code[:3]
		}
		if day, ok := weekdayCodes[code]; ok {
			set[day] = true
		}
	}
	if len(set) == 0 {
		return DefaultWorkingWeek()
	}
	return set
}

// FormatWorkingDays renders a weekday set back to the canonical comma
// separated "mon,tue,..." form used by the project_takt_setup table.
func FormatWorkingDays(set map[time.Weekday]bool) string {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	codes := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

	var parts []string
	for i, day := range order {
		if set[day] {
			parts = append(parts, codes[i])
		}
	}
	return strings.Join(parts, ",")
}

// AddWorkingDays advances a date by n working days, counting only weekdays in
// the given set. The fixed weekly set is the only calendar model; holiday
// exceptions are out of scope.
func AddWorkingDays(start time.Time, days int, workingDays map[time.Weekday]bool) time.Time {
	if len(workingDays) == 0 {
		workingDays = DefaultWorkingWeek()
	}
	current := start
	added := 0
	for added < days {
		current = current.AddDate(0, 0, 1)
		if workingDays[current.Weekday()] {
			added++
		}
	}
	return current
}
