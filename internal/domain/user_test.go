package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("test@example.com", "Pw1!", RoleClient)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, RoleClient, user.Role)
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("normalizes email", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("  MiXeD@Example.COM ", "password", RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, "mixed@example.com", user.Email)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("", "password", RoleClient)
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("not-an-email", "password", RoleClient)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("test@example.com", "", RoleClient)
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("rejects password over bcrypt limit", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("test@example.com", strings.Repeat("x", 73), RoleClient)
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("accepts very short password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("test@example.com", "Pw1!", RoleProvider)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("test@example.com", "password", Role("manager"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestNewSuperuser(t *testing.T) {
	t.Parallel()

	boolPtr := func(b bool) *bool { return &b }

	t.Run("defaults both flags to true", func(t *testing.T) {
		t.Parallel()
		user, err := NewSuperuser("admin@example.com", "password", SuperuserFlags{})
		require.NoError(t, err)

		assert.Equal(t, RoleAdmin, user.Role)
		assert.True(t, user.IsStaff)
		assert.True(t, user.IsSuperuser)
	})

	t.Run("accepts explicit true flags", func(t *testing.T) {
		t.Parallel()
		user, err := NewSuperuser("admin@example.com", "password", SuperuserFlags{
			IsStaff:     boolPtr(true),
			IsSuperuser: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, user.IsStaff)
		assert.True(t, user.IsSuperuser)
	})

	t.Run("rejects explicit false is_staff", func(t *testing.T) {
		t.Parallel()
		_, err := NewSuperuser("admin@example.com", "password", SuperuserFlags{
			IsStaff: boolPtr(false),
		})
		assert.ErrorIs(t, err, ErrSuperuserFlags)
	})

	t.Run("rejects explicit false is_superuser", func(t *testing.T) {
		t.Parallel()
		_, err := NewSuperuser("admin@example.com", "password", SuperuserFlags{
			IsSuperuser: boolPtr(false),
		})
		assert.ErrorIs(t, err, ErrSuperuserFlags)
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user@example.com", NormalizeEmail("  USER@EXAMPLE.COM  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
