package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist holds revoked API bearer tokens until they expire.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;uniqueIndex:ux_token_blacklist_token" json:"-"`
	ExpiredAt time.Time      `gorm:"index:idx_token_blacklist_expired_at" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_token_blacklist_deleted_at" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
