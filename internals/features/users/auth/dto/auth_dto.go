package dto

import (
	"time"

	"modaly_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserDTO struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	User      UserDTO `json:"user"`
}

func ToUserDTO(u model.User) UserDTO {
	return UserDTO{
		UserID:    u.UserID.String(),
		Email:     u.UserEmail,
		CreatedAt: u.UserCreatedAt,
	}
}
