// Package main implements the createsuperuser command: it provisions an
// admin account directly in the database, outside the public registration
// endpoints. Admins have no role profile.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/petlink/petlink-api/internal/config"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/platform/postgres"
	"github.com/petlink/petlink-api/internal/service/auth"
)

func main() {
	var (
		email       = flag.String("email", "", "email address for the admin account (required)")
		password    = flag.String("password", "", "password for the admin account (required)")
		isStaff     = flag.Bool("staff", true, "grant staff access")
		isSuperuser = flag.Bool("superuser", true, "grant superuser access")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("both -email and -password are required")
	}

	// Only pass flags the caller set explicitly, so NewSuperuser can reject
	// an explicit false instead of silently forcing it true.
	superuserFlags := domain.SuperuserFlags{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "staff":
			superuserFlags.IsStaff = isStaff
		case "superuser":
			superuserFlags.IsSuperuser = isSuperuser
		}
	})

	if err := run(*email, *password, superuserFlags); err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	fmt.Printf("Superuser %s created successfully\n", domain.NormalizeEmail(*email))
}

func run(email, password string, flags domain.SuperuserFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	user, err := domain.NewSuperuser(email, password, flags)
	if err != nil {
		return err
	}

	hashed, err := auth.NewBcryptHasher().Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	userStore := postgres.NewUserStore(db, appLogger)
	if err := userStore.Create(ctx, user); err != nil {
		return err
	}
	return nil
}
