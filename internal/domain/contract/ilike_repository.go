package contract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// ILikeRepository defines the interface for like persistence.
type ILikeRepository interface {
	// CreateLike inserts a like. A second like for the same (user, answer) pair returns ErrDuplicate.
	CreateLike(ctx context.Context, like *entity.Like) error
	DeleteLike(ctx context.Context, likeID uint) error
	// GetLikeByUserAndAnswer returns ErrNotFound when the user has not liked the answer.
	GetLikeByUserAndAnswer(ctx context.Context, userID, answerID uint) (*entity.Like, error)
	CountLikesByAnswerID(ctx context.Context, answerID uint) (int64, error)
}
