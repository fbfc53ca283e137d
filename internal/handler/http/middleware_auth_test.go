package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secure-profile/internal/service"
	"github.com/MKhiriev/go-secure-profile/internal/utils"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// serveWithAuth runs the auth middleware in front of a handler that records
// the user ID it sees.
func serveWithAuth(h *Handler, authorization string) (*httptest.ResponseRecorder, int64, bool) {
	var (
		seenUserID int64
		called     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seenUserID, _ = utils.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	return rec, seenUserID, called
}

func TestAuth_ValidToken(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good.token").Return(models.Token{UserID: 42}, nil)

	rec, userID, called := serveWithAuth(h, "Bearer good.token")

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), userID)
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good.token").Return(models.Token{UserID: 1}, nil)

	rec, _, called := serveWithAuth(h, "bearer good.token")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		parseErr      error
		wantError     string
	}{
		{
			name:      "no header",
			wantError: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
			wantError:     utils.ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:          "scheme only",
			authorization: "Bearer",
			wantError:     utils.ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:          "expired or forged token",
			authorization: "Bearer bad.token",
			parseErr:      service.ErrTokenIsExpiredOrInvalid,
			wantError:     service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.parseErr != nil {
				mocks.auth.EXPECT().ParseToken(gomock.Any(), "bad.token").Return(models.Token{}, tt.parseErr)
			}

			rec, _, called := serveWithAuth(h, tt.authorization)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}
