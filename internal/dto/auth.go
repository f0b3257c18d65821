package dto

import (
	"time"

	"github.com/GlebRadaev/vivento/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,max=255" example:"Aysel Mammadova"`
	Email    string `json:"email" validate:"required,email" example:"aysel@example.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"s3cret!"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"aysel@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
}

type FacebookLoginRequestDTO struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type UserDTO struct {
	ID             int       `json:"id" example:"1"`
	Email          string    `json:"email" example:"aysel@example.com"`
	Name           string    `json:"name" example:"Aysel Mammadova"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Role           string    `json:"role" example:"user"`
	CreatedAt      time.Time `json:"created_at" example:"2025-05-01T12:00:00Z"`
}

type TokenResponseDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type" example:"bearer"`
	User        UserDTO `json:"user"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Role:           string(u.Role),
		CreatedAt:      u.CreatedAt,
	}
}
