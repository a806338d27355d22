package user_test

import (
	"context"
	"errors"
	"testing"

	"mantenimiento_backend/internals/constants"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"
	user "mantenimiento_backend/internals/seeds/users/auth"
	"mantenimiento_backend/internals/testutil"
)

func TestSeedAdminRefusesTakenUsername(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "admin", "secret-pass", constants.RoleEmployee)
	t.Setenv("ADMIN_SEED_PASSWORD", "semilla-123")

	err := user.SeedAdmin(context.Background(), db)
	if !errors.Is(err, user.ErrAdminNameTaken) {
		t.Fatalf("err = %v, want ErrAdminNameTaken", err)
	}
	exists, err := authRepo.AdminExists(context.Background(), db)
	if err != nil || exists {
		t.Fatalf("admin exists = %v, %v; want none", exists, err)
	}
}

func TestSeedAdminUsesConfiguredUsername(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "admin", "secret-pass", constants.RoleEmployee)
	t.Setenv("ADMIN_SEED_USERNAME", "Jefe")
	t.Setenv("ADMIN_SEED_PASSWORD", "semilla-123")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := user.SeedAdmin(ctx, db); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	u, err := authRepo.FindUserByUsername(ctx, db, "jefe")
	if err != nil {
		t.Fatalf("find jefe: %v", err)
	}
	if u.Role != constants.RoleAdmin {
		t.Fatalf("role = %q, want admin", u.Role)
	}
}
