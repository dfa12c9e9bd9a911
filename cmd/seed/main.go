package main

import (
	"context"
	"errors"
	"log"

	"userhub/internal/auth"
	"userhub/internal/config"
	"userhub/internal/db"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

var seedUsers = []struct {
	Name     string
	Email    string
	Password string
}{
	{Name: "Taro Yamada", Email: "taro.yamada@example.com", Password: "securepassword123"},
	{Name: "John Doe", Email: "john.doe@example.com", Password: "mypassword"},
	{Name: "Admin", Email: "admin@example.com", Password: "adminpassword"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.EnsureUserIndexes(ctx, database.Collection(model.CollectionName)); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	repo := repository.NewUserRepository(database)
	hasher := auth.NewPasswordHasher()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		hashed, err := hasher.Hash(su.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: hashed,
		}
		if err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEmail) {
				skipped++
				continue
			}
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d created, %d skipped (already present)", created, skipped)
}
