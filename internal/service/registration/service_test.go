package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/mocks"
	"github.com/petlink/petlink-api/internal/store"
)

type registrationFixture struct {
	users    *mocks.MockUserStore
	profiles *mocks.MockProfileStore
	service  *Service
}

func newRegistrationFixture() *registrationFixture {
	users := mocks.NewMockUserStore()
	profiles := mocks.NewMockProfileStore()
	service := NewService(
		&mocks.MockTxRunner{},
		users,
		profiles,
		mocks.NewMockJWTService(),
		&mocks.MockPasswordHasher{},
		nil,
		nil,
	)
	return &registrationFixture{users: users, profiles: profiles, service: service}
}

func validProviderInput() ProviderInput {
	return ProviderInput{
		Email:        "vet@example.com",
		Password:     "Pw1!",
		BusinessName: "Happy Paws",
		RUC:          "20123456789",
		Address:      "123 Main St",
		Phone:        "555-0100",
		Bio:          "Small animal clinic",
	}
}

func TestRegisterProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates user profile and tokens", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()

		result, err := f.service.RegisterProvider(ctx, validProviderInput())
		require.NoError(t, err)

		assert.Equal(t, "vet@example.com", result.User.Email)
		assert.Equal(t, domain.RoleProvider, result.User.Role)
		assert.Empty(t, result.User.Password, "plaintext must be cleared")
		assert.NotEmpty(t, result.User.HashedPassword)
		assert.NotEmpty(t, result.Tokens.Access)
		assert.NotEmpty(t, result.Tokens.Refresh)

		profile, ok := f.profiles.Providers[result.User.ID]
		require.True(t, ok, "provider profile must be created")
		assert.Equal(t, "Happy Paws", profile.BusinessName)
		assert.Equal(t, "0.00", profile.Rating)
		assert.False(t, profile.IsVerified)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()
		in := validProviderInput()
		in.Email = "  VET@Example.COM "

		result, err := f.service.RegisterProvider(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "vet@example.com", result.User.Email)
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()

		_, err := f.service.RegisterProvider(ctx, ProviderInput{Email: "not-an-email"})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Contains(t, fieldErrs, "email")
		assert.Contains(t, fieldErrs, "password")
		assert.Contains(t, fieldErrs, "business_name")
		assert.Contains(t, fieldErrs, "ruc")
		assert.Contains(t, fieldErrs, "address")
		assert.Contains(t, fieldErrs, "phone")
		assert.Equal(t, []string{"Enter a valid email address."}, fieldErrs["email"])
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()
		_, err := f.service.RegisterProvider(ctx, validProviderInput())
		require.NoError(t, err)

		in := validProviderInput()
		in.RUC = "20999999999"
		_, err = f.service.RegisterProvider(ctx, in)
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, []string{"Email already exists."}, fieldErrs["email"])
	})

	t.Run("rejects duplicate ruc", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()
		_, err := f.service.RegisterProvider(ctx, validProviderInput())
		require.NoError(t, err)

		in := validProviderInput()
		in.Email = "other@example.com"
		_, err = f.service.RegisterProvider(ctx, in)
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, []string{"RUC already registered."}, fieldErrs["ruc"])
	})

	t.Run("profile failure leaves no user behind", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()
		boom := errors.New("profile insert failed")
		f.profiles.CreateProviderFn = func(ctx context.Context, profile *domain.ProviderProfile) error {
			return boom
		}
		// The real runner rolls the user row back with the transaction; the
		// mock mimics that by discarding the user on failure.
		f.service.txRunner = &mocks.MockTxRunner{
			RunFn: func(ctx context.Context, fn store.TxFn) error {
				err := fn(ctx, nil)
				if err != nil {
					f.users.Users = map[string]*domain.User{}
				}
				return err
			},
		}

		_, err := f.service.RegisterProvider(ctx, validProviderInput())
		require.ErrorIs(t, err, ErrRegistrationFailed)
		assert.Empty(t, f.users.Users)
	})

	t.Run("duplicate race inside transaction maps to field error", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()
		f.users.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrEmailExists
		}
		f.users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, store.ErrUserNotFound
		}

		_, err := f.service.RegisterProvider(ctx, validProviderInput())
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, []string{"Email already exists."}, fieldErrs["email"])
	})
}

func TestRegisterClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates client with minimal input", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()

		result, err := f.service.RegisterClient(ctx, ClientInput{
			Email:    "client@example.com",
			Password: "Pw1!",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RoleClient, result.User.Role)
		profile, ok := f.profiles.Clients[result.User.ID]
		require.True(t, ok, "client profile must be created")
		assert.Empty(t, profile.Phone)
	})

	t.Run("stores optional contact details", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()

		result, err := f.service.RegisterClient(ctx, ClientInput{
			Email:       "client@example.com",
			Password:    "password",
			Phone:       "555-0199",
			Address:     "42 Side St",
			Preferences: "mornings only",
		})
		require.NoError(t, err)

		profile := f.profiles.Clients[result.User.ID]
		require.NotNil(t, profile)
		assert.Equal(t, "555-0199", profile.Phone)
		assert.Equal(t, "mornings only", profile.Preferences)
	})

	t.Run("requires email and password", func(t *testing.T) {
		t.Parallel()
		f := newRegistrationFixture()

		_, err := f.service.RegisterClient(ctx, ClientInput{})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, []string{"This field is required."}, fieldErrs["email"])
		assert.Equal(t, []string{"This field is required."}, fieldErrs["password"])
	})
}
