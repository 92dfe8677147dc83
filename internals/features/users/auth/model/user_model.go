package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users (role flat: admin/editor/viewer)
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail    string    `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"`
	UserPassword string    `json:"-" gorm:"column:user_password;type:text;not null"`
	UserRole     string    `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'viewer'"`
	UserGoogleID *string   `json:"-" gorm:"column:user_google_id;type:text;uniqueIndex"`
	UserIsActive bool      `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
