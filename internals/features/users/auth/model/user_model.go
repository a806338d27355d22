package model

import "time"

type UserModel struct {
	ID           uint      `gorm:"column:id;primaryKey"                                   json:"id"`
	Username     string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex:ux_users_username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"                json:"-"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:employee" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"                       json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"                       json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
