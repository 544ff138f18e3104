package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role classifies a user account. The set is closed: every request resolves
// the role exactly once and dispatches on it.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Common validation errors for User.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrInvalidRole      = errors.New("invalid role")
	ErrSuperuserFlags   = errors.New("superuser must have is_staff and is_superuser set")
)

// User is a registered account. Email is the unique identifier; the role is
// immutable after creation. Password fields never serialize.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between input and hashing
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	IsStaff        bool      `json:"-"`
	IsSuperuser    bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email address. All uniqueness checks
// and lookups operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a User with the given email, password and role.
// The caller is responsible for hashing the password before storage.
func NewUser(email, password string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// SuperuserFlags carries the optional administrative flags passed to
// NewSuperuser. Nil means "not specified" and defaults to true.
type SuperuserFlags struct {
	IsStaff     *bool
	IsSuperuser *bool
}

// NewSuperuser creates an admin User with both administrative flags forced
// true. Explicitly passing either flag as false is an error.
func NewSuperuser(email, password string, flags SuperuserFlags) (*User, error) {
	if flags.IsStaff != nil && !*flags.IsStaff {
		return nil, ErrSuperuserFlags
	}
	if flags.IsSuperuser != nil && !*flags.IsSuperuser {
		return nil, ErrSuperuserFlags
	}

	user, err := NewUser(email, password, RoleAdmin)
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	return user, nil
}

// Validate checks the User's fields. Returns the first failing check.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	switch u.Role {
	case RoleClient, RoleProvider, RoleAdmin:
	default:
		return ErrInvalidRole
	}

	if u.Password != "" {
		// bcrypt truncates beyond 72 bytes; reject rather than silently truncate.
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}

// validEmailFormat performs a basic shape check: one @ with a dotted domain.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
