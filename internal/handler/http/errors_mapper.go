package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/service"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/internal/validators"
	"github.com/MKhiriev/go-secure-profile/models"
)

// errorStatuses is matched in order, so an error wrapping several sentinels
// gets the status of the first one listed. ErrTemporarilyUnavailable must
// stay ahead of the generic query errors that may wrap it.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMultipartForm, http.StatusBadRequest},
	{ErrMissingFile, http.StatusBadRequest},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrCannotReadData, http.StatusInternalServerError},
	{service.ErrCannotProtectData, http.StatusInternalServerError},

	{validators.ErrWeakPassword, http.StatusBadRequest},
	{validators.ErrEmptyLogin, http.StatusBadRequest},
	{validators.ErrEmptyEmail, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrPasswordsDoNotMatch, http.StatusBadRequest},
	{validators.ErrPasswordTooLong, http.StatusBadRequest},
	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrEmptyFileName, http.StatusBadRequest},
	{validators.ErrEmptyFile, http.StatusBadRequest},
	{validators.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{validators.ErrUnsupportedContentType, http.StatusUnsupportedMediaType},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrFileNotFound, http.StatusNotFound},
	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// exposedServerErrors are 5xx errors whose message is safe to show clients.
var exposedServerErrors = []error{
	service.ErrCannotReadData,
	service.ErrCannotProtectData,
	store.ErrTemporarilyUnavailable,
}

func statusFromError(err error) int {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			return known.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the client-facing body for err. Client errors carry
// the matching sentinel's message, never the wrapped chain; validation
// errors also list every violated rule.
func errorResponse(err error) (int, models.ErrorResponse) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error:  validationErr.Err.Error(),
			Errors: validationErr.Violations,
		}
	}

	for _, known := range errorStatuses {
		target, status := known.err, known.status
		if !errors.Is(err, target) {
			continue
		}
		if status < http.StatusInternalServerError {
			return status, models.ErrorResponse{Error: target.Error()}
		}
		for _, exposed := range exposedServerErrors {
			if target == exposed {
				return status, models.ErrorResponse{Error: target.Error()}
			}
		}
		return status, models.ErrorResponse{Error: http.StatusText(status)}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
}

// writeError logs err with the request logger and answers with its mapped
// status and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteJSON(w, body, status)
}
