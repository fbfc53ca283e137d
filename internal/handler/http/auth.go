package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/models"
)

// maxJSONBodySize caps register and login bodies, measured after any gzip
// decoding.
const maxJSONBodySize = 64 << 10

// decodeJSONBody reads at most maxJSONBodySize bytes of r.Body into v.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrRequestBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSONBody(w, r, &request); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSONBody(w, r, &credentials); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK)
}

// writeAuthResponse issues a token for user and returns it both in the
// body and in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user, Token: token.SignedString}, status)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "no user ID in context")
		return
	}

	profile, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "reading profile failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
