package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/petlink/petlink-api/internal/api/middleware"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/mocks"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/service/booking"
	"github.com/petlink/petlink-api/internal/service/catalog"
	"github.com/petlink/petlink-api/internal/service/pets"
	"github.com/petlink/petlink-api/internal/service/registration"
)

// apiFixture wires the full handler stack against in-memory stores, with a
// token-to-claims map standing in for real JWT validation.
type apiFixture struct {
	users        *mocks.MockUserStore
	profiles     *mocks.MockProfileStore
	services     *mocks.MockServiceStore
	pets         *mocks.MockPetStore
	appointments *mocks.MockAppointmentStore
	jwt          *mocks.MockJWTService

	tokens map[string]*auth.Claims
	router chi.Router
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		users:        mocks.NewMockUserStore(),
		profiles:     mocks.NewMockProfileStore(),
		services:     mocks.NewMockServiceStore(),
		pets:         mocks.NewMockPetStore(),
		appointments: mocks.NewMockAppointmentStore(),
		jwt:          mocks.NewMockJWTService(),
		tokens:       make(map[string]*auth.Claims),
	}

	f.jwt.ValidateTokenFn = func(ctx context.Context, token string) (*auth.Claims, error) {
		if claims, ok := f.tokens[token]; ok {
			return claims, nil
		}
		return nil, auth.ErrInvalidToken
	}

	registrationService := registration.NewService(
		&mocks.MockTxRunner{},
		f.users,
		f.profiles,
		f.jwt,
		&mocks.MockPasswordHasher{},
		nil,
		nil,
	)

	authHandler := NewAuthHandler(registrationService, f.users, f.profiles, f.jwt, &mocks.MockPasswordVerifier{})
	serviceHandler := NewServiceHandler(catalog.NewService(f.services, nil, nil))
	petHandler := NewPetHandler(pets.NewService(f.pets, nil))
	appointmentHandler := NewAppointmentHandler(booking.NewService(f.appointments, f.services, nil, nil))
	authMiddleware := apiMiddleware.NewAuthMiddleware(f.jwt)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register/provider", authHandler.RegisterProvider)
		r.Post("/auth/register/client", authHandler.RegisterClient)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		r.Get("/services", serviceHandler.List)
		r.Get("/services/{id}", serviceHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/services", serviceHandler.Create)
			r.Put("/services/{id}", serviceHandler.Update)
			r.Patch("/services/{id}", serviceHandler.Update)
			r.Delete("/services/{id}", serviceHandler.Delete)

			r.Get("/pets", petHandler.List)
			r.Post("/pets", petHandler.Create)
			r.Get("/pets/{id}", petHandler.Get)
			r.Put("/pets/{id}", petHandler.Update)
			r.Patch("/pets/{id}", petHandler.Update)
			r.Delete("/pets/{id}", petHandler.Delete)

			r.Get("/appointments", appointmentHandler.List)
			r.Post("/appointments", appointmentHandler.Create)
			r.Get("/appointments/{id}", appointmentHandler.Get)
			r.Put("/appointments/{id}", appointmentHandler.Update)
			r.Patch("/appointments/{id}", appointmentHandler.Update)
			r.Delete("/appointments/{id}", appointmentHandler.Delete)
		})
	})
	f.router = r

	return f
}

// addUser seeds a user and returns a bearer token wired to its claims.
func (f *apiFixture) addUser(t *testing.T, email string, role domain.Role) (*domain.User, string) {
	t.Helper()

	user, err := domain.NewUser(email, "Pw1!", role)
	require.NoError(t, err)
	user.HashedPassword = "hashed:Pw1!"
	user.Password = ""
	require.NoError(t, f.users.Create(context.Background(), user))

	token := "token-" + user.ID.String()
	f.tokens[token] = mocks.ClaimsForUser(user)
	return user, token
}

// do performs a request against the fixture router.
func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into v.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
