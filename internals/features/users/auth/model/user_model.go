package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail        string    `gorm:"column:user_email;type:varchar(120);unique;not null" json:"user_email"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserIsActive     bool      `gorm:"column:user_is_active;default:true" json:"user_is_active"`
	UserCreatedAt    time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

func (User) TableName() string {
	return "users"
}
