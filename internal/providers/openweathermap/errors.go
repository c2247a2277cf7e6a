package openweathermap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var ErrMissingAPIKey = errors.New("openweathermap api key is not configured")

// UpstreamError is a non-success response from OpenWeatherMap. Code and Message
// come from the provider's {"cod": ..., "message": ...} body when present.
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openweathermap returned status %d: %s", e.StatusCode, e.Message)
}

// responseCode accepts "cod" as either a JSON number or a string; the provider
// uses both depending on the endpoint.
type responseCode string

func (c *responseCode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = responseCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unexpected cod value %s: %w", data, err)
	}
	*c = responseCode(n.String())
	return nil
}

type errorBody struct {
	Code    responseCode `json:"cod"`
	Message string       `json:"message"`
}

func newUpstreamError(status int, body []byte) *UpstreamError {
	upstream := &UpstreamError{StatusCode: status, Code: strconv.Itoa(status)}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Code != "" {
			upstream.Code = string(parsed.Code)
		}
		upstream.Message = parsed.Message
	}
	if upstream.Message == "" {
		upstream.Message = http.StatusText(status)
	}
	return upstream
}
