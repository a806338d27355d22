package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/constants"
	authHelper "mantenimiento_backend/internals/features/users/auth/helper"
	authModel "mantenimiento_backend/internals/features/users/auth/model"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"
	helper "mantenimiento_backend/internals/helpers"
)

var ErrInvalidCredentials = &helper.AppError{
	Kind:    helper.KindUnauthenticated,
	Message: "invalid username or password",
}

// ========================== LOGIN ==========================

// Authenticate checks a username/password pair. Unknown usernames still pay
// for one bcrypt comparison.
func Authenticate(ctx context.Context, db *gorm.DB, username, password string) (*authModel.UserModel, error) {
	username = authHelper.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, helper.ValidationErr("username and password are required")
	}

	user, err := authRepo.FindUserByUsername(ctx, db, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.StorageErr("failed to load user", err)
		}
		_ = authHelper.CheckPasswordHash(authHelper.DummyHash(), password)
		log.Printf("[AUTH] ❌ login failed for unknown user %q", username)
		return nil, ErrInvalidCredentials
	}

	if err := authHelper.CheckPasswordHash(user.PasswordHash, password); err != nil {
		log.Printf("[AUTH] ❌ bad password for %q", username)
		return nil, ErrInvalidCredentials
	}
	log.Printf("[AUTH] ✅ %s logged in (role=%s)", user.Username, user.Role)
	return user, nil
}

// ========================== REGISTER ==========================

// Register creates a user. Only an admin actor may create another admin;
// everyone else always gets an employee account.
func Register(ctx context.Context, db *gorm.DB, username, password, role string, actorIsAdmin bool) (*authModel.UserModel, error) {
	username = authHelper.NormalizeUsername(username)
	if err := authHelper.ValidateCredentials(username, password); err != nil {
		return nil, helper.ValidationErr(err.Error())
	}

	if role == "" {
		role = constants.RoleEmployee
	}
	if !constants.IsValidRole(role) {
		return nil, helper.FieldErr("role", "role must be admin or employee")
	}
	if role == constants.RoleAdmin && !actorIsAdmin {
		return nil, helper.ForbiddenErr(constants.RoleErrorAdmin("admin registration"))
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, helper.StorageErr("failed to hash password", err)
	}
	user := &authModel.UserModel{Username: username, PasswordHash: hash, Role: role}
	if err := authRepo.CreateUser(ctx, db, user); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, helper.ConflictErr("username already taken", err)
		}
		return nil, helper.StorageErr("failed to create user", err)
	}
	log.Printf("[AUTH] ✅ registered %s (role=%s)", user.Username, user.Role)
	return user, nil
}

// ========================== API TOKENS ==========================

type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func IssueToken(user *authModel.UserModel, now time.Time) (*IssuedToken, error) {
	if configs.JWTSecret == "" {
		return nil, &helper.AppError{Kind: helper.KindStorage, Message: "API tokens are disabled"}
	}
	ttl := configs.GetEnvDuration("JWT_TTL", 12*time.Hour)
	raw, exp, err := helper.IssueAccessToken(configs.JWTSecret, user.ID, user.Username, user.Role, ttl, now)
	if err != nil {
		return nil, helper.StorageErr("failed to sign token", err)
	}
	return &IssuedToken{AccessToken: raw, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// RevokeToken blacklists a bearer token until its own expiry.
func RevokeToken(ctx context.Context, db *gorm.DB, raw string) error {
	exp := time.Now().Add(24 * time.Hour)
	if claims, err := helper.ParseAccessToken(configs.JWTSecret, raw); err == nil && claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := authRepo.BlacklistToken(ctx, db, raw, exp); err != nil {
		return helper.StorageErr("failed to revoke token", err)
	}
	return nil
}
