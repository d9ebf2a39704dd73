package client

import (
	"context"
	"fmt"
	"net/http"

	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
)

func (c *Client) ListHabits(ctx context.Context) ([]entity.Habit, error) {
	habits := make([]entity.Habit, 0)
	if err := c.do(ctx, http.MethodGet, "/habits/", nil, &habits); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error) {
	var habit entity.Habit
	if err := c.do(ctx, http.MethodPost, "/habits/", req, &habit); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return &habit, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id int64, req *UpdateHabitRequest) (*entity.Habit, error) {
	var habit entity.Habit
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/habits/%d", id), req, &habit)
	if err != nil {
		switch statusOf(err) {
		case http.StatusNotFound:
			return nil, errorvalues.ErrHabitNotFound
		case http.StatusUnauthorized:
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return &habit, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/habits/%d", id), nil, nil)
	if err != nil {
		switch statusOf(err) {
		case http.StatusNotFound:
			return errorvalues.ErrHabitNotFound
		case http.StatusUnauthorized:
			return errorvalues.ErrNotAuthenticated
		}
		return err
	}
	return nil
}
