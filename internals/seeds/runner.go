package seeds

import (
	"context"

	"mantenimiento_backend/internals/configs"
	users "mantenimiento_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds runs after migrations on every boot; each seed is a no-op
// when its rows already exist.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Admin
	if err := users.SeedAdmin(ctx, db); err != nil {
		return err
	}

	//* Optional user list
	if path := configs.GetEnv("SEED_USERS_FILE"); path != "" {
		if err := users.SeedUsersFromJSON(ctx, db, path); err != nil {
			return err
		}
	}
	return nil
}
