package httputil

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// APIError is a non-success answer from the collaborator. Message comes from
// the error envelope in the body when one is present, otherwise it is the
// generic status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// ParseAPIError builds an APIError for a non-2xx response. The body is read
// fully so the connection can be reused.
func ParseAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var envelope errorEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	switch {
	case envelope.Detail != "":
		apiErr.Message = envelope.Detail
	case envelope.Message != "":
		apiErr.Message = envelope.Message
	}
	return apiErr
}

// DecodeResponse decodes a JSON body into out. A 204 or an empty body is
// success and out stays untouched; out may be nil when no body is expected.
func DecodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := sonic.ConfigDefault.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
