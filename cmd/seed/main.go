// Command seed creates the default accounts if they do not exist yet.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vkazankov/voicebank/internal/config"
	"github.com/vkazankov/voicebank/internal/model"
	"github.com/vkazankov/voicebank/internal/repository/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer db.Close()

	users := postgres.NewUserRepository(db)

	seeds := []struct {
		email    string
		password string
	}{
		{"admin@example.com", envOr("SEED_ADMIN_PASSWORD", "admin123")},
		{"user@example.com", envOr("SEED_USER_PASSWORD", "user123")},
	}

	for _, seed := range seeds {
		_, err := users.GetByEmail(ctx, seed.email)
		if err == nil {
			log.Printf("%s already exists", seed.email)
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			log.Fatalf("failed to check %s: %v", seed.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		if _, err := users.Create(ctx, model.User{
			ID:           uuid.New(),
			Email:        seed.email,
			PasswordHash: string(hash),
		}); err != nil {
			log.Fatalf("failed to create %s: %v", seed.email, err)
		}
		log.Printf("%s created", seed.email)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
