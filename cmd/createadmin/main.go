package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/blgguy/safetransport/internal/config"
	"github.com/blgguy/safetransport/internal/crypto"
	"github.com/blgguy/safetransport/pkg/logger"
	"github.com/blgguy/safetransport/pkg/postgres"
)

// Утилита для заведения учетной записи администратора. Пароль хэшируется
// Argon2id, повторный запуск с тем же username обновляет пароль и роль
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", "Admin", "admin role")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}
	log := logger.New(cfg.LogLevel)

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}
	if len(*password) < 12 {
		log.Fatal("password must be at least 12 characters")
	}

	ctx := context.Background()
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	query := `
		INSERT INTO admin_users (username, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role;
	`
	if _, err := dbpool.Exec(ctx, query, *username, hash, *role); err != nil {
		log.Fatalf("Failed to upsert admin user: %v", err)
	}

	log.Infof("Admin user %q is ready", *username)
}
