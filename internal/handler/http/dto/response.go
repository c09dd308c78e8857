package dto

import (
	"time"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// UserSummary is the public view of a user embedded in questions and answers.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserResponse is the DTO for the authenticated user.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

func ToUserSummary(user entity.User) UserSummary {
	return UserSummary{ID: user.ID, Username: user.Username}
}

func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is served by GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}
