package usecase

import (
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID uint) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
