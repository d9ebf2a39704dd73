package store

import (
	"time"

	"github.com/habithero/habitctl/pkg/entity"
)

// currentStreak counts consecutive calendar days with at least one check-in,
// walking back one day at a time. The run must be anchored on today or on
// yesterday: a habit untouched today keeps its streak until the day is over,
// anything older than that is a broken chain and counts as 0.
func currentStreak(checkins []entity.Checkin, today time.Time) int {
	if len(checkins) == 0 {
		return 0
	}
	days := make(map[string]struct{}, len(checkins))
	for _, c := range checkins {
		days[c.Date()] = struct{}{}
	}
	anchor := today
	if _, ok := days[anchor.Format(time.DateOnly)]; !ok {
		anchor = today.AddDate(0, 0, -1)
		if _, ok := days[anchor.Format(time.DateOnly)]; !ok {
			return 0
		}
	}
	streak := 0
	for d := anchor; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// completedOn reports whether any check-in falls on the given calendar day.
func completedOn(checkins []entity.Checkin, day time.Time) bool {
	target := day.Format(time.DateOnly)
	for _, c := range checkins {
		if c.Date() == target {
			return true
		}
	}
	return false
}
