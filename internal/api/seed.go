package api

import (
	"context"
	"errors"
	"fmt"
	"log"

	"portfolio_api/internal/common"
	"portfolio_api/internal/common/security"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"
	"portfolio_api/internal/platform/config"

	"github.com/google/uuid"
)

// SeedAdmin creates the configured admin account if it does not exist yet.
// There is no registration endpoint and no role-elevation path, so this is
// the only supported way to provision the single admin besides direct SQL.
// A missing ADMIN_EMAIL or ADMIN_PASSWORD skips seeding entirely.
func SeedAdmin(ctx context.Context, userRepo repository.UserRepository) error {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("No admin credentials configured, skipping admin seed")
		return nil
	}

	_, err := userRepo.FindByEmailWithHash(ctx, cfg.AdminEmail)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	hash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	admin := &model.User{
		ID:           uuid.NewString(),
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin create: %w", err)
	}
	log.Printf("Seeded admin account %s", cfg.AdminEmail)
	return nil
}
