package leavepolicy

import "time"

// DayCount is the classification of every calendar day in a range.
// HolidayDays is always zero: no holiday calendar is configured yet.
type DayCount struct {
	TotalDays   int `json:"total_days"`
	WorkingDays int `json:"working_days"`
	WeekendDays int `json:"weekend_days"`
	HolidayDays int `json:"holiday_days"`
}

// CountDays counts the days from start to end, both inclusive.
// Only the calendar date of each argument is used. When end is before
// start the zero DayCount is returned and the caller decides what that means.
func CountDays(start, end time.Time) DayCount {
	var dc DayCount

	from := DateOf(start)
	to := DateOf(end)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			dc.WeekendDays++
		} else {
			dc.WorkingDays++
		}
	}

	dc.TotalDays = dc.WorkingDays + dc.WeekendDays + dc.HolidayDays
	return dc
}

func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateOf truncates t to midnight UTC of its own calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
