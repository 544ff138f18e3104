package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/petlink/petlink-api/internal/config"
	"github.com/petlink/petlink-api/internal/platform/metrics"
	"github.com/petlink/petlink-api/internal/platform/postgres"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/service/booking"
	"github.com/petlink/petlink-api/internal/service/catalog"
	"github.com/petlink/petlink-api/internal/service/pets"
	"github.com/petlink/petlink-api/internal/service/registration"
	"github.com/petlink/petlink-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore        store.UserStore
	profileStore     store.ProfileStore
	serviceStore     store.ServiceStore
	petStore         store.PetStore
	appointmentStore store.AppointmentStore

	// Services
	jwtService          auth.JWTService
	passwordVerifier    auth.PasswordVerifier
	registrationService *registration.Service
	catalogService      *catalog.Service
	petService          *pets.Service
	bookingService      booking.Service

	metrics *metrics.Metrics
}

// newApplication builds the dependency graph on top of the given database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	m := metrics.New()

	userStore := postgres.NewUserStore(db, logger)
	profileStore := postgres.NewProfileStore(db, logger)
	serviceStore := postgres.NewServiceStore(db, logger)
	petStore := postgres.NewPetStore(db, logger)
	appointmentStore := postgres.NewAppointmentStore(db, logger)

	txRunner := store.NewSQLTxRunner(db)
	hasher := auth.NewBcryptHasher()

	return &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:        userStore,
		profileStore:     profileStore,
		serviceStore:     serviceStore,
		petStore:         petStore,
		appointmentStore: appointmentStore,

		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		registrationService: registration.NewService(
			txRunner, userStore, profileStore, jwtService, hasher, m, logger,
		),
		catalogService: catalog.NewService(serviceStore, m, logger),
		petService:     pets.NewService(petStore, logger),
		bookingService: booking.NewService(appointmentStore, serviceStore, m, logger),

		metrics: m,
	}, nil
}

// cleanup releases resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
