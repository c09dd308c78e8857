package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser bool
	ShouldFailLogin      bool
	ShouldFailGetByID    bool
	// RegisterErr, when set, is returned by Register instead of a generic failure.
	RegisterErr error

	// Return values
	MockUser        entity.User
	MockAccessToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        7,
			Username:  "testuser",
			Email:     "test@example.com",
			CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Username = username
	user.Email = email
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	if m.ShouldFailGetByID || userID != m.MockUser.ID {
		return nil, usecase.ErrUserNotFound
	}
	return &m.MockUser, nil
}
