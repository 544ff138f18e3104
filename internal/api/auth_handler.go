package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/petlink/petlink-api/internal/api/middleware"
	"github.com/petlink/petlink-api/internal/api/shared"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/redact"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/service/registration"
	"github.com/petlink/petlink-api/internal/store"
)

// AuthHandler handles registration, login, token refresh and the
// current-user endpoint.
type AuthHandler struct {
	registration     *registration.Service
	userStore        store.UserStore
	profileStore     store.ProfileStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	reg *registration.Service,
	userStore store.UserStore,
	profileStore store.ProfileStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		registration:     reg,
		userStore:        userStore,
		profileStore:     profileStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// RegisterProvider handles POST /api/auth/register/provider.
func (h *AuthHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req registration.ProviderInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.registration.RegisterProvider(r.Context(), req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		User:    NewUserResponse(result.User),
		Tokens:  result.Tokens,
		Message: "Provider registered successfully",
	})
}

// RegisterClient handles POST /api/auth/register/client.
func (h *AuthHandler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req registration.ClientInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.registration.RegisterClient(r.Context(), req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		User:    NewUserResponse(result.User),
		Tokens:  result.Tokens,
		Message: "Client registered successfully",
	})
}

// Login handles POST /api/auth/login. A wrong password and an unknown email
// are indistinguishable in the response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	fieldErrs := domain.FieldErrors{}
	if req.Email == "" {
		fieldErrs.Add("email", "This field is required.")
	}
	if req.Password == "" {
		fieldErrs.Add("password", "This field is required.")
	}
	if len(fieldErrs) > 0 {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, fieldErrs)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by email", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(r.Context(), user)
	if err != nil {
		slog.Error("failed to generate tokens", "error", redact.Error(err), "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Access:  tokens.Access,
		Refresh: tokens.Refresh,
		User:    NewUserResponse(user),
	})
}

// Refresh handles POST /api/auth/refresh. Only a refresh token is accepted
// here; it re-issues the access token and nothing else.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Refresh == "" {
		shared.RespondWithJSON(w, r, http.StatusBadRequest,
			domain.NewFieldError("refresh", "This field is required."))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.Refresh)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	// The account may have been deleted since the token was issued.
	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		slog.Error("failed to get user for refresh", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	access, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		slog.Error("failed to generate access token", "error", redact.Error(err), "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshResponse{Access: access})
}

// Me handles GET /api/auth/me. Returns the authenticated user together
// with their role profile, or a null profile when none exists.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), actor.UserID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	profile, err := h.profileStore.GetForUser(r.Context(), user)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		User:    NewUserResponse(user),
		Profile: profile,
	})
}
