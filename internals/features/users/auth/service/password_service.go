package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authHelper "mantenimiento_backend/internals/features/users/auth/helper"
	authRepo "mantenimiento_backend/internals/features/users/auth/repository"
	helper "mantenimiento_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(ctx context.Context, db *gorm.DB, userID uint, current, next string) error {
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFoundErr("user not found")
		}
		return helper.StorageErr("failed to load user", err)
	}

	if err := authHelper.CheckPasswordHash(user.PasswordHash, current); err != nil {
		return &helper.AppError{Kind: helper.KindUnauthenticated, Message: "current password incorrect"}
	}
	if err := authHelper.ValidateCredentials(user.Username, next); err != nil {
		return helper.FieldErr("new_password", err.Error())
	}

	hash, err := authHelper.HashPassword(next)
	if err != nil {
		return helper.StorageErr("failed to hash new password", err)
	}
	if err := authRepo.UpdateUserPassword(ctx, db, userID, hash); err != nil {
		return helper.StorageErr("failed to update password", err)
	}
	return nil
}
