package leavepolicy_test

import (
	"testing"
	"time"

	"go-leave/internal/leavepolicy"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  leavepolicy.DayCount
	}{
		{
			name:  "single weekday",
			start: date(2024, 7, 17), // Wednesday
			end:   date(2024, 7, 17),
			want:  leavepolicy.DayCount{TotalDays: 1, WorkingDays: 1},
		},
		{
			name:  "single saturday",
			start: date(2024, 7, 20),
			end:   date(2024, 7, 20),
			want:  leavepolicy.DayCount{TotalDays: 1, WeekendDays: 1},
		},
		{
			name:  "monday to friday",
			start: date(2024, 7, 15),
			end:   date(2024, 7, 19),
			want:  leavepolicy.DayCount{TotalDays: 5, WorkingDays: 5},
		},
		{
			name:  "friday to monday spans a weekend",
			start: date(2024, 7, 19),
			end:   date(2024, 7, 22),
			want:  leavepolicy.DayCount{TotalDays: 4, WorkingDays: 2, WeekendDays: 2},
		},
		{
			name:  "crosses month and year boundary",
			start: date(2024, 12, 30),
			end:   date(2025, 1, 3),
			want:  leavepolicy.DayCount{TotalDays: 5, WorkingDays: 5},
		},
		{
			name:  "negative end before start yields zero",
			start: date(2024, 7, 19),
			end:   date(2024, 7, 18),
			want:  leavepolicy.DayCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := leavepolicy.CountDays(tt.start, tt.end)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.TotalDays, got.WorkingDays+got.WeekendDays+got.HolidayDays)
		})
	}
}

func TestCountDays_AnySevenDayWindow(t *testing.T) {
	start := date(2024, 1, 1)
	for i := 0; i < 14; i++ {
		from := start.AddDate(0, 0, i)
		got := leavepolicy.CountDays(from, from.AddDate(0, 0, 6))

		assert.Equal(t, 7, got.WorkingDays+got.WeekendDays, from.String())
		assert.Equal(t, 2, got.WeekendDays, from.String())
		assert.Equal(t, 0, got.HolidayDays)
	}
}

func TestCountDays_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	start := time.Date(2024, 7, 15, 23, 30, 0, 0, loc)
	end := time.Date(2024, 7, 16, 0, 15, 0, 0, loc)

	got := leavepolicy.CountDays(start, end)

	assert.Equal(t, 2, got.WorkingDays)
}
