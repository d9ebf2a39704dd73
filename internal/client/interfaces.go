package client

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"github.com/habithero/habitctl/pkg/entity"
)

// TokenSource hands out the current bearer token, empty when no session is
// active. Implemented by the session object.
type TokenSource interface {
	Token() string
}

type AuthAPI interface {
	// Exchanges credentials for an access token
	Login(ctx context.Context, username, password string) (string, error)
	// Creates a new account
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Fetches the profile of the token's owner
	Profile(ctx context.Context) (*entity.User, error)
}

type HabitsAPI interface {
	// Lists all habits of the authenticated user
	ListHabits(ctx context.Context) ([]entity.Habit, error)
	// Creates a habit, returns it with the server-assigned id
	CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error)
	// Updates the provided fields of a habit
	UpdateHabit(ctx context.Context, id int64, req *UpdateHabitRequest) (*entity.Habit, error)
	// Deletes a habit (the server cascades to its check-ins)
	DeleteHabit(ctx context.Context, id int64) error
}

type CheckinsAPI interface {
	// Lists every check-in of the authenticated user across all habits
	ListCheckins(ctx context.Context) ([]entity.Checkin, error)
	// Records a check-in for habitID on the given calendar date
	CreateCheckin(ctx context.Context, habitID int64, date string) (*entity.Checkin, error)
	// Removes a check-in by id
	DeleteCheckin(ctx context.Context, habitID, checkinID int64) error
}

type InsightsAPI interface {
	// Aggregate stats computed server-side
	Stats(ctx context.Context) (*entity.AnalyticsStats, error)
	// AI-generated habit suggestions based on the user's current habits
	SuggestHabits(ctx context.Context) ([]entity.SuggestedHabit, error)
	// Streams the PDF progress report into w, returns the server-proposed filename
	ExportReport(ctx context.Context, w io.Writer) (string, error)
}

type CreateHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Frequency   string `json:"frequency"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date"`
}

type UpdateHabitRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	Category    *string `json:"category,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
}
