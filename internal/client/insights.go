package client

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
	"github.com/habithero/habitctl/pkg/httputil"
)

func (c *Client) Stats(ctx context.Context) (*entity.AnalyticsStats, error) {
	var stats entity.AnalyticsStats
	if err := c.do(ctx, http.MethodGet, "/analytics/stats", nil, &stats); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SuggestHabits(ctx context.Context) ([]entity.SuggestedHabit, error) {
	suggestions := make([]entity.SuggestedHabit, 0)
	if err := c.do(ctx, http.MethodGet, "/ai/suggest_habits", nil, &suggestions); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return suggestions, nil
}

// ExportReport streams the PDF progress report into w. The returned filename
// comes from Content-Disposition when the server proposes one.
func (c *Client) ExportReport(ctx context.Context, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/report/pdf", nil)
	if err != nil {
		return "", errors.New("building request: " + err.Error())
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.New("transport error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := httputil.ParseAPIError(resp)
		if apiErr.StatusCode == http.StatusUnauthorized {
			return "", errorvalues.ErrNotAuthenticated
		}
		return "", apiErr
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", errors.New("streaming report: " + err.Error())
	}
	return reportFilename(resp), nil
}

func reportFilename(resp *http.Response) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return "habit_report_" + time.Now().Format("2006-01-02") + ".pdf"
}
