package entity

import (
	errorvalues "github.com/habithero/habitctl/internal/error_values"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Category string

const (
	CategoryHealth   Category = "health"
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryOther    Category = "other"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	}
	return "", errorvalues.ErrUnknownFrequency
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryHealth, CategoryWork, CategoryLearning, CategoryOther:
		return Category(s), nil
	}
	return "", errorvalues.ErrUnknownCategory
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	parsed, err := ParseFrequency(unquote(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (c *Category) UnmarshalJSON(data []byte) error {
	parsed, err := ParseCategory(unquote(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// unquote strips the surrounding quotes of a JSON string literal. Enum values
// never contain escapes, so byte trimming is enough.
func unquote(data []byte) string {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return string(data[1 : len(data)-1])
	}
	return string(data)
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Habit struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Category    Category  `json:"category"`
	StartDate   string    `json:"start_date"`
}

type Checkin struct {
	ID          int64  `json:"id"`
	HabitID     int64  `json:"habit_id"`
	CheckinDate string `json:"checkin_date"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
}

// Date returns the calendar-day part of CheckinDate. Serialized dates may
// carry a time suffix which must not take part in day comparisons.
func (c Checkin) Date() string {
	return DateOnly(c.CheckinDate)
}

func DateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// HabitWithCheckins is the derived read-model: a habit together with its
// check-ins, current streak and today's completion flag. Recomputed on every
// read, never stored.
type HabitWithCheckins struct {
	Habit
	Checkins       []Checkin `json:"checkins"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completed_today"`
}

type SuggestedHabit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency"`
}

type AnalyticsStats struct {
	TotalHabits   int           `json:"total_habits"`
	TotalCheckins int           `json:"total_checkins"`
	LongestStreak int           `json:"longest_streak"`
	Streaks       map[int64]int `json:"streaks"`
}
