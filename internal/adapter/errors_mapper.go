package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMediaType,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and a [*ResponseError] otherwise.
// JSON error bodies are decoded; anything else is used as plain text.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	code := resp.StatusCode()
	respErr := &ResponseError{StatusCode: code, err: ErrUnexpectedStatus}
	if sentinel, ok := statusErrors[code]; ok {
		respErr.err = sentinel
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		respErr.Message = body.Error
		respErr.Violations = body.Errors
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
	}

	if respErr.Message == "" {
		respErr.Message = http.StatusText(code)
	}

	return respErr
}
