package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/habithero/habitctl/pkg/entity"
)

var streakToday = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func checkinsOn(dates ...string) []entity.Checkin {
	checkins := make([]entity.Checkin, 0, len(dates))
	for i, d := range dates {
		checkins = append(checkins, entity.Checkin{
			ID:          int64(i + 1),
			HabitID:     1,
			CheckinDate: d,
			Status:      "completed",
		})
	}
	return checkins
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Dates    []string
		Expected int
	}{
		{
			Desc:     "no check-ins",
			Dates:    nil,
			Expected: 0,
		},
		{
			Desc:     "single check-in today",
			Dates:    []string{"2025-03-15"},
			Expected: 1,
		},
		{
			Desc:     "single check-in yesterday still live",
			Dates:    []string{"2025-03-14"},
			Expected: 1,
		},
		{
			Desc:     "single check-in two days ago is broken",
			Dates:    []string{"2025-03-13"},
			Expected: 0,
		},
		{
			Desc:     "three consecutive days",
			Dates:    []string{"2025-03-15", "2025-03-14", "2025-03-13"},
			Expected: 3,
		},
		{
			Desc:     "gap at yesterday breaks the chain",
			Dates:    []string{"2025-03-15", "2025-03-13"},
			Expected: 1,
		},
		{
			Desc:     "run anchored on yesterday",
			Dates:    []string{"2025-03-14", "2025-03-13", "2025-03-12"},
			Expected: 3,
		},
		{
			Desc:     "same calendar day counts once",
			Dates:    []string{"2025-03-15", "2025-03-15T08:00:00", "2025-03-14"},
			Expected: 2,
		},
		{
			Desc:     "time suffix truncated before comparison",
			Dates:    []string{"2025-03-15T23:59:59Z", "2025-03-14T00:00:01Z"},
			Expected: 2,
		},
		{
			Desc:     "unordered input",
			Dates:    []string{"2025-03-13", "2025-03-15", "2025-03-14"},
			Expected: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, currentStreak(checkinsOn(tc.Dates...), streakToday))
		})
	}
}

func TestCompletedOn(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Dates    []string
		Expected bool
	}{
		{
			Desc:     "no check-ins",
			Dates:    nil,
			Expected: false,
		},
		{
			Desc:     "checked today",
			Dates:    []string{"2025-03-15"},
			Expected: true,
		},
		{
			Desc:     "checked today with time component",
			Dates:    []string{"2025-03-15T07:12:00Z"},
			Expected: true,
		},
		{
			Desc:     "only yesterday",
			Dates:    []string{"2025-03-14"},
			Expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, completedOn(checkinsOn(tc.Dates...), streakToday))
		})
	}
}
