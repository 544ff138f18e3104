// Package registration implements account creation: input validation,
// the atomic User+Profile create, and initial token issue.
package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/platform/metrics"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/store"
)

// ProviderInput is the payload for provider registration.
type ProviderInput struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,max=72"`
	BusinessName string `json:"business_name" validate:"required,max=255"`
	RUC          string `json:"ruc"           validate:"required,max=20"`
	Address      string `json:"address"       validate:"required,max=255"`
	Phone        string `json:"phone"         validate:"required,max=20"`
	Bio          string `json:"bio"`
}

// ClientInput is the payload for client registration. Everything beyond the
// credentials is optional.
type ClientInput struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,max=72"`
	Phone       string `json:"phone"       validate:"max=20"`
	Address     string `json:"address"     validate:"max=255"`
	Preferences string `json:"preferences"`
}

// Result is the outcome of a successful registration.
type Result struct {
	User   *domain.User
	Tokens auth.TokenPair
}

// Service performs registrations. The User row and its Profile row are
// created inside one transaction: partial success is never observable.
type Service struct {
	txRunner store.TxRunner
	users    store.UserStore
	profiles store.ProfileStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService creates a registration Service.
func NewService(
	txRunner store.TxRunner,
	users store.UserStore,
	profiles store.ProfileStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	m *metrics.Metrics,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		txRunner: txRunner,
		users:    users,
		profiles: profiles,
		jwt:      jwt,
		hasher:   hasher,
		metrics:  m,
		logger:   log.With(slog.String("component", "registration")),
		validate: newValidator(),
	}
}

// newValidator builds a validator that reports json field names, so the
// collected field errors match the request payload keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterProvider validates the input, atomically creates the provider
// User and ProviderProfile, and issues a token pair.
func (s *Service) RegisterProvider(ctx context.Context, in ProviderInput) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	in.Email = domain.NormalizeEmail(in.Email)

	fieldErrs := s.collectFieldErrors(in)
	if err := s.checkEmailFree(ctx, in.Email, fieldErrs); err != nil {
		return nil, err
	}
	if in.RUC != "" {
		exists, err := s.profiles.RUCExists(ctx, in.RUC)
		if err != nil {
			log.Error("failed to check ruc uniqueness", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
		}
		if exists {
			fieldErrs.Add("ruc", "RUC already registered.")
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	user, err := domain.NewUser(in.Email, in.Password, domain.RoleProvider)
	if err != nil {
		return nil, domain.NewFieldError("email", err.Error())
	}

	createProfile := func(ctx context.Context, tx *sql.Tx) error {
		profile, err := domain.NewProviderProfile(user.ID, in.BusinessName, in.RUC, in.Address, in.Phone, in.Bio)
		if err != nil {
			return err
		}
		return s.profiles.WithTx(tx).CreateProvider(ctx, profile)
	}

	result, err := s.register(ctx, user, createProfile)
	if err != nil {
		return nil, err
	}

	s.metrics.IncUsersRegistered(string(domain.RoleProvider))
	log.Info("provider registered", slog.String("user_id", user.ID.String()))
	return result, nil
}

// RegisterClient validates the input, atomically creates the client User
// and ClientProfile, and issues a token pair.
func (s *Service) RegisterClient(ctx context.Context, in ClientInput) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	in.Email = domain.NormalizeEmail(in.Email)

	fieldErrs := s.collectFieldErrors(in)
	if err := s.checkEmailFree(ctx, in.Email, fieldErrs); err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	user, err := domain.NewUser(in.Email, in.Password, domain.RoleClient)
	if err != nil {
		return nil, domain.NewFieldError("email", err.Error())
	}

	createProfile := func(ctx context.Context, tx *sql.Tx) error {
		profile, err := domain.NewClientProfile(user.ID, in.Phone, in.Address, in.Preferences)
		if err != nil {
			return err
		}
		return s.profiles.WithTx(tx).CreateClient(ctx, profile)
	}

	result, err := s.register(ctx, user, createProfile)
	if err != nil {
		return nil, err
	}

	s.metrics.IncUsersRegistered(string(domain.RoleClient))
	log.Info("client registered", slog.String("user_id", user.ID.String()))
	return result, nil
}

// register hashes the credential, runs the two-row create in a single
// transaction, and issues the token pair. Any failure inside the
// transaction rolls back both rows.
func (s *Service) register(ctx context.Context, user *domain.User, createProfile store.TxFn) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return createProfile(ctx, tx)
	})
	if err != nil {
		// Concurrent registration can still hit the unique constraints
		// inside the transaction; surface those as field errors.
		if errors.Is(err, store.ErrEmailExists) {
			return nil, domain.NewFieldError("email", "Email already exists.")
		}
		if errors.Is(err, store.ErrRUCExists) {
			return nil, domain.NewFieldError("ruc", "RUC already registered.")
		}
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, fieldErrs
		}
		log.Error("atomic registration failed, rolled back",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	tokens, err := s.jwt.GenerateTokenPair(ctx, user)
	if err != nil {
		log.Error("failed to issue tokens after registration",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	return &Result{User: user, Tokens: tokens}, nil
}

// collectFieldErrors maps validator failures into per-field messages.
// Nothing fails fast: the caller sees every invalid field at once.
func (s *Service) collectFieldErrors(in any) domain.FieldErrors {
	fieldErrs := domain.FieldErrors{}
	err := s.validate.Struct(in)
	if err == nil {
		return fieldErrs
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		fieldErrs.Add("non_field_errors", "Invalid input.")
		return fieldErrs
	}
	for _, fe := range invalid {
		fieldErrs.Add(fe.Field(), messageForTag(fe))
	}
	return fieldErrs
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

// checkEmailFree adds a field error when the email is taken. Store failures
// other than not-found abort the registration.
func (s *Service) checkEmailFree(ctx context.Context, email string, fieldErrs domain.FieldErrors) error {
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		fieldErrs.Add("email", "Email already exists.")
		return nil
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
}
