package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/constants"
	authHelper "mantenimiento_backend/internals/features/users/auth/helper"
	"mantenimiento_backend/internals/features/users/auth/model"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"

	"gorm.io/gorm"
)

const (
	AdminUsername         = "admin"
	fallbackAdminPassword = "admin_password"
)

// ErrAdminNameTaken means the seed username belongs to a non-admin account.
var ErrAdminNameTaken = errors.New("admin seed username is taken by a non-admin account")

// SeedAdmin creates the admin account when no admin exists yet. The name
// comes from ADMIN_SEED_USERNAME (default "admin") and the password from
// ADMIN_SEED_PASSWORD; production refuses to start without a password.
func SeedAdmin(ctx context.Context, db *gorm.DB) error {
	exists, err := authRepo.AdminExists(ctx, db)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	username := authHelper.NormalizeUsername(configs.GetEnv("ADMIN_SEED_USERNAME", AdminUsername))
	taken, err := authRepo.FindUserByUsername(ctx, db, username)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %q has role %q; set ADMIN_SEED_USERNAME to a free name or promote that user",
			ErrAdminNameTaken, username, taken.Role)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("look up %q: %w", username, err)
	}

	password := configs.GetEnv("ADMIN_SEED_PASSWORD")
	if password == "" {
		if configs.IsProduction() {
			return errors.New("ADMIN_SEED_PASSWORD must be set in production")
		}
		log.Printf("[WARN] ⚠️ ADMIN_SEED_PASSWORD not set, seeding %q with the default password. Change it now.", username)
		password = fallbackAdminPassword
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &model.UserModel{Username: username, PasswordHash: hash, Role: constants.RoleAdmin}
	if err := authRepo.CreateUser(ctx, db, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("✅ admin user %q seeded", username)
	return nil
}

type UserSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON inserts the users listed in filePath, skipping
// usernames that already exist.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	log.Println("📥 reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, data := range inputs {
		username := authHelper.NormalizeUsername(data.Username)
		if _, err := authRepo.FindUserByUsername(ctx, db, username); err == nil {
			log.Printf("ℹ️ user '%s' already exists, skipped.", username)
			continue
		}
		if err := authHelper.ValidateCredentials(username, data.Password); err != nil {
			log.Printf("❌ skipping '%s': %v", username, err)
			continue
		}
		role := data.Role
		if !constants.IsValidRole(role) {
			role = constants.RoleEmployee
		}

		hash, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ failed to hash password for '%s': %v", username, err)
			continue
		}
		if err := authRepo.CreateUser(ctx, db, &model.UserModel{Username: username, PasswordHash: hash, Role: role}); err != nil {
			log.Printf("❌ failed to insert user '%s': %v", username, err)
		} else {
			log.Printf("✅ inserted user '%s'", username)
		}
	}
	return nil
}
