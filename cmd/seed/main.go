// Command seed creates the bootstrap accounts for local development:
// one admin, one manager and one agent. Existing accounts are left untouched,
// so the command is safe to re-run.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/estatehub/auth-service/internal/core/domain"
	"github.com/estatehub/auth-service/internal/core/service"
	mongostore "github.com/estatehub/auth-service/internal/infrastructure/db/mongo"
	"github.com/estatehub/auth-service/internal/pkg/config"
	"github.com/estatehub/auth-service/pkg/logger"
)

var seedUsers = []struct {
	email    string
	password string
	role     domain.Role
}{
	{"admin@example.com", "admin123", domain.RoleAdmin},
	{"manager@example.com", "manager123", domain.RoleManager},
	{"agent@example.com", "agent123", domain.RoleAgent},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongostore.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("hashing failed")
		}

		now := time.Now().UTC()
		_, err = repo.Create(ctx, &domain.User{
			Email:        su.email,
			PasswordHash: hash,
			Role:         su.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case errors.Is(err, domain.ErrUserExists):
			log.Info().Str("email", su.email).Msg("user already exists, skipped")
		case err != nil:
			log.Fatal().Err(err).Str("email", su.email).Msg("user creation failed")
		default:
			log.Info().Str("email", su.email).Str("role", string(su.role)).Msg("user created")
		}
	}
}
