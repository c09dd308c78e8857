package mocks

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
)

// MockJWTService issues tokens of the form "token-<id>".
type MockJWTService struct{}

var _ usecase.JWTService = MockJWTService{}

func (MockJWTService) GenerateAccessToken(userID uint) (string, error) {
	return "token-" + strconv.FormatUint(uint64(userID), 10), nil
}

func (MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	raw, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return nil, errors.New("invalid token")
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: uint(id)}, nil
}
