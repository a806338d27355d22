// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mantenimiento_backend/internals/constants"
	authModel "mantenimiento_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uint) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *authModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, id uint, hash string) error {
	res := db.WithContext(ctx).Model(&authModel.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func AdminExists(ctx context.Context, db *gorm.DB) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.UserModel{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&n).Error
	return n > 0, err
}

/* ====================== TOKEN BLACKLIST ====================== */

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var row authModel.TokenBlacklist
	err := db.WithContext(ctx).Select("id").Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// BlacklistToken is a no-op when the token is already listed.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt}).Error
}

// PurgeExpiredBlacklist hard-deletes up to limit rows that expired before cutoff.
func PurgeExpiredBlacklist(ctx context.Context, db *gorm.DB, cutoff time.Time, limit int) (int64, error) {
	var ids []uint
	if err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Unscoped().
		Where("expired_at < ?", cutoff).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Delete(&authModel.TokenBlacklist{}, ids)
	return res.RowsAffected, res.Error
}
