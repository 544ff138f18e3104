package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for profiles.
var (
	ErrEmptyProfileUserID = errors.New("profile user ID cannot be empty")
	ErrEmptyBusinessName  = errors.New("business name cannot be empty")
	ErrEmptyRUC           = errors.New("ruc cannot be empty")
)

// Profile is the closed set of role-specific profiles attached to a User:
// exactly one of ProviderProfile or ClientProfile exists per account, keyed
// by user ID. A nil Profile means the role-appropriate row is missing.
type Profile interface {
	ProfileRole() Role
}

// ProviderProfile holds the business attributes of a provider account.
// Rating is a canonical decimal string ("0.00").
type ProviderProfile struct {
	UserID       uuid.UUID `json:"-"`
	BusinessName string    `json:"business_name"`
	RUC          string    `json:"ruc"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	IsVerified   bool      `json:"is_verified"`
	Rating       string    `json:"rating"`
}

// ProfileRole implements Profile.
func (p *ProviderProfile) ProfileRole() Role { return RoleProvider }

// Validate checks the ProviderProfile's required fields.
func (p *ProviderProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProfileUserID
	}
	if p.BusinessName == "" {
		return ErrEmptyBusinessName
	}
	if p.RUC == "" {
		return ErrEmptyRUC
	}
	return nil
}

// NewProviderProfile creates the profile row that accompanies a provider
// User. Verification and rating start at their defaults.
func NewProviderProfile(userID uuid.UUID, businessName, ruc, address, phone, bio string) (*ProviderProfile, error) {
	profile := &ProviderProfile{
		UserID:       userID,
		BusinessName: businessName,
		RUC:          ruc,
		Address:      address,
		Phone:        phone,
		Bio:          bio,
		IsVerified:   false,
		Rating:       "0.00",
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// ClientProfile holds the optional contact attributes of a client account.
type ClientProfile struct {
	UserID      uuid.UUID `json:"-"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Preferences string    `json:"preferences"`
}

// ProfileRole implements Profile.
func (p *ClientProfile) ProfileRole() Role { return RoleClient }

// Validate checks the ClientProfile's required fields.
func (p *ClientProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProfileUserID
	}
	return nil
}

// NewClientProfile creates the profile row that accompanies a client User.
// All fields beyond the user reference are optional.
func NewClientProfile(userID uuid.UUID, phone, address, preferences string) (*ClientProfile, error) {
	profile := &ClientProfile{
		UserID:      userID,
		Phone:       phone,
		Address:     address,
		Preferences: preferences,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
