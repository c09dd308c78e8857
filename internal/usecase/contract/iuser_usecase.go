package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login returns the user and a signed access token.
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID uint) (*entity.User, error)
}
