package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Error is a non-2xx reply from the shop API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("shop api: %d %s", e.StatusCode, e.Message)
}

func newError(resp *resty.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode()}

	// The backend answers either {"message": ...}, {"error": ...} or a bare
	// string, depending on the endpoint.
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}

func statusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// StatusOf maps an upstream failure onto a status the gateway can answer
// with: API errors keep their code, transport failures become 502.
func StatusOf(err error) int {
	if code := statusCode(err); code != 0 {
		return code
	}
	return http.StatusBadGateway
}
