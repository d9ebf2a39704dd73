package client

import (
	"context"
	"fmt"
	"net/http"

	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
)

type createCheckinRequest struct {
	CheckinDate string `json:"checkin_date"`
}

func (c *Client) ListCheckins(ctx context.Context) ([]entity.Checkin, error) {
	checkins := make([]entity.Checkin, 0)
	if err := c.do(ctx, http.MethodGet, "/habits/checkins/all", nil, &checkins); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return checkins, nil
}

func (c *Client) CreateCheckin(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
	var checkin entity.Checkin
	path := fmt.Sprintf("/habits/%d/checkins/", habitID)
	err := c.do(ctx, http.MethodPost, path, &createCheckinRequest{CheckinDate: date}, &checkin)
	if err != nil {
		switch statusOf(err) {
		case http.StatusNotFound:
			return nil, errorvalues.ErrHabitNotFound
		case http.StatusUnauthorized:
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return &checkin, nil
}

func (c *Client) DeleteCheckin(ctx context.Context, habitID, checkinID int64) error {
	path := fmt.Sprintf("/habits/%d/checkins/%d", habitID, checkinID)
	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		switch statusOf(err) {
		case http.StatusNotFound:
			return errorvalues.ErrCheckinNotFound
		case http.StatusUnauthorized:
			return errorvalues.ErrNotAuthenticated
		}
		return err
	}
	return nil
}
