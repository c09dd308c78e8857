package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// MockLikeUsecase toggles an in-memory set of (user, answer) pairs.
type MockLikeUsecase struct {
	// Err, when set, is returned by ToggleLike.
	Err error

	liked  map[[2]uint]bool
	counts map[uint]int
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{liked: map[[2]uint]bool{}, counts: map[uint]int{}}
}

func (m *MockLikeUsecase) ToggleLike(ctx context.Context, userID, answerID uint) (*entity.LikeResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == 0 {
		return nil, errors.New("missing user")
	}
	key := [2]uint{userID, answerID}
	if m.liked[key] {
		delete(m.liked, key)
		m.counts[answerID]--
		return &entity.LikeResult{State: entity.LikeStateUnliked, Likes: m.counts[answerID]}, nil
	}
	m.liked[key] = true
	m.counts[answerID]++
	return &entity.LikeResult{State: entity.LikeStateLiked, Likes: m.counts[answerID]}, nil
}
