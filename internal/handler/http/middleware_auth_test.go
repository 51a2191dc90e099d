package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
	"github.com/stretchr/testify/assert"
)

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, token string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users/stats", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		parseErr error
		wantMsg  string
	}{
		{name: "header missing", wantMsg: app.MsgTokenMissing},
		{name: "expired", token: "expired.jwt", parseErr: service.ErrTokenIsExpired, wantMsg: app.MsgTokenExpired},
		{name: "bad signature", token: "forged.jwt", parseErr: service.ErrTokenIsInvalid, wantMsg: app.MsgTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
					assert.Equal(t, tt.token, s)
					return models.Token{}, tt.parseErr
				},
			})

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

			rr := executeAuth(h, tt.token, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
			assert.False(t, nextCalled, "protected handler must not run")
		})
	}
}

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{SignedString: "good.jwt", Claims: models.Claims{UserID: "u42"}}, nil
		},
	})

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "good.jwt", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u42", gotID)
}
