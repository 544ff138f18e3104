package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/mocks"
	"github.com/petlink/petlink-api/internal/service/auth"
)

// authHarness runs a request through Authenticate into a probe handler that
// records the actor it saw.
type authHarness struct {
	jwt     *mocks.MockJWTService
	actor   domain.Actor
	actorOK bool
	handler http.Handler
}

func newAuthHarness() *authHarness {
	h := &authHarness{jwt: mocks.NewMockJWTService()}

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.actor, h.actorOK = GetActor(r)
		w.WriteHeader(http.StatusOK)
	})
	h.handler = NewAuthMiddleware(h.jwt).Authenticate(probe)
	return h
}

func (h *authHarness) request(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token resolves the actor", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()

		userID := uuid.New()
		h.jwt.ValidateTokenFn = func(ctx context.Context, token string) (*auth.Claims, error) {
			assert.Equal(t, "good-token", token)
			return &auth.Claims{
				UserID:    userID,
				Email:     "client@example.com",
				Role:      domain.RoleClient,
				TokenType: "access",
			}, nil
		}

		w := h.request(t, "Bearer good-token")
		require.Equal(t, http.StatusOK, w.Code)

		require.True(t, h.actorOK)
		assert.Equal(t, userID, h.actor.UserID)
		assert.Equal(t, "client@example.com", h.actor.Email)
		assert.Equal(t, domain.RoleClient, h.actor.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()

		w := h.request(t, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authorization header required", errorMessage(t, w))
		assert.False(t, h.actorOK)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()

		for _, header := range []string{"good-token", "Basic abc", "Bearer a b"} {
			w := h.request(t, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code, header)
			assert.Equal(t, "Invalid authorization format", errorMessage(t, w))
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()
		h.jwt.Err = auth.ErrExpiredToken

		w := h.request(t, "Bearer stale")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token expired", errorMessage(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()
		h.jwt.Err = auth.ErrInvalidToken

		w := h.request(t, "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", errorMessage(t, w))
	})

	t.Run("refresh token rejected on access routes", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()
		h.jwt.Err = auth.ErrWrongTokenType

		w := h.request(t, "Bearer refresh-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", errorMessage(t, w))
	})

	t.Run("unexpected validation failure is a server error", func(t *testing.T) {
		t.Parallel()
		h := newAuthHarness()
		h.jwt.Err = errors.New("key store unavailable")

		w := h.request(t, "Bearer token")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Authentication error", errorMessage(t, w))
	})
}
