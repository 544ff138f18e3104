package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/mocks"
	"github.com/petlink/petlink-api/internal/store"
)

func newCatalogFixture() (*mocks.MockServiceStore, *Service) {
	services := mocks.NewMockServiceStore()
	return services, NewService(services, nil, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCatalogCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}

	t.Run("provider publishes a service", func(t *testing.T) {
		t.Parallel()
		services, catalog := newCatalogFixture()

		svc, err := catalog.Create(ctx, provider, CreateInput{
			Name:        "Grooming",
			Description: "Full groom",
			Price:       "25.00",
			Duration:    60,
		})
		require.NoError(t, err)

		assert.Equal(t, provider.UserID, svc.ProviderID)
		assert.True(t, svc.IsActive)
		assert.Contains(t, services.Services, svc.ID)
	})

	t.Run("client cannot publish", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		client := domain.Actor{UserID: uuid.New(), Role: domain.RoleClient}

		_, err := catalog.Create(ctx, client, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		assert.ErrorIs(t, err, ErrNotProvider)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("collects missing field errors", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()

		_, err := catalog.Create(ctx, provider, CreateInput{})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Contains(t, fieldErrs, "name")
		assert.Contains(t, fieldErrs, "price")
		assert.Contains(t, fieldErrs, "duration")
	})

	t.Run("rejects non-decimal price", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()

		_, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "cheap", Duration: 60})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Contains(t, fieldErrs, "price")
	})
}

func TestCatalogList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}
	otherProvider := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}

	t.Run("filters by provider and hides inactive", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()

		mine, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)
		_, err = catalog.Create(ctx, otherProvider, CreateInput{Name: "Walking", Price: "10.00", Duration: 30})
		require.NoError(t, err)
		hidden, err := catalog.Create(ctx, provider, CreateInput{Name: "Boarding", Price: "40.00", Duration: 720})
		require.NoError(t, err)
		_, err = catalog.Update(ctx, provider, hidden.ID, Patch{IsActive: boolPtr(false)})
		require.NoError(t, err)

		all, err := catalog.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		filtered, err := catalog.List(ctx, &provider.UserID)
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, mine.ID, filtered[0].ID)
	})

	t.Run("inactive service still readable by ID", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()

		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)
		_, err = catalog.Update(ctx, provider, svc.ID, Patch{IsActive: boolPtr(false)})
		require.NoError(t, err)

		got, err := catalog.Get(ctx, svc.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})
}

func TestCatalogUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}

	t.Run("owner updates fields", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		updated, err := catalog.Update(ctx, provider, svc.ID, Patch{
			Name:     strPtr("Premium Grooming"),
			Price:    strPtr("35.00"),
			Duration: intPtr(90),
		})
		require.NoError(t, err)
		assert.Equal(t, "Premium Grooming", updated.Name)
		assert.Equal(t, "35.00", updated.Price)
		assert.Equal(t, 90, updated.Duration)
	})

	t.Run("non-owner gets permission denied", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		other := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}
		_, err = catalog.Update(ctx, other, svc.ID, Patch{Name: strPtr("Hijacked")})
		assert.ErrorIs(t, err, ErrNotServiceOwner)
	})

	t.Run("provider reference is immutable", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		_, err = catalog.Update(ctx, provider, svc.ID, Patch{Provider: strPtr(uuid.New().String())})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, []string{"This field cannot be modified."}, fieldErrs["provider"])
	})

	t.Run("rejects invalid patch values", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		_, err = catalog.Update(ctx, provider, svc.ID, Patch{Price: strPtr("-1")})
		require.Error(t, err)

		var fieldErrs domain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Contains(t, fieldErrs, "price")
	})
}

func TestCatalogDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		require.NoError(t, catalog.Delete(ctx, provider, svc.ID))
		_, err = catalog.Get(ctx, svc.ID)
		assert.ErrorIs(t, err, store.ErrServiceNotFound)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		_, catalog := newCatalogFixture()
		svc, err := catalog.Create(ctx, provider, CreateInput{Name: "Grooming", Price: "25.00", Duration: 60})
		require.NoError(t, err)

		other := domain.Actor{UserID: uuid.New(), Role: domain.RoleProvider}
		err = catalog.Delete(ctx, other, svc.ID)
		assert.ErrorIs(t, err, ErrNotServiceOwner)
	})
}
