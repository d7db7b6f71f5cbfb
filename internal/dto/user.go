package dto

import (
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the models layer.
type UserDTO struct {
	UserID   uint64    `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Address  *string   `json:"address"`
	IsActive bool      `json:"is_active"`
	JoinDate time.Time `json:"join_date"`
	Phones   []string  `json:"phones"`
}

// ToUserDTO converts a user model to its API representation
func ToUserDTO(user models.User) UserDTO {
	phones := make([]string, 0, len(user.Phones))
	for _, phone := range user.Phones {
		phones = append(phones, phone.PhoneNumber)
	}

	return UserDTO{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Address:  user.Address,
		IsActive: user.IsActive,
		JoinDate: user.JoinDate,
		Phones:   phones,
	}
}

// TokenDTO is the login response body
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
