package errorvalues

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoSession        = errors.New("no active session")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrUserExists       = errors.New("such user already exists")

	ErrHabitNotFound    = errors.New("habit doesn't exist")
	ErrCheckinNotFound  = errors.New("check-in doesn't exist")
	ErrTogglePending    = errors.New("toggle already in flight for this habit")
	ErrUnknownFrequency = errors.New("unknown habit frequency")
	ErrUnknownCategory  = errors.New("unknown habit category")
)
