package contract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

type IAnswerRepository interface {
	CreateAnswer(ctx context.Context, answer *entity.Answer) error
	// GetAnswerByID preloads the author and the parent question (id, title).
	GetAnswerByID(ctx context.Context, id uint) (*entity.Answer, error)
	// GetAnswerForUpdate loads the bare answer row and locks it for the
	// surrounding transaction where the database supports row locks.
	GetAnswerForUpdate(ctx context.Context, id uint) (*entity.Answer, error)
	// ListAnswersByQuestionID orders by likes desc, then newest first.
	ListAnswersByQuestionID(ctx context.Context, questionID uint) ([]entity.Answer, error)
	// SearchAnswers matches term case-insensitively against content, newest first,
	// preloading the author and the parent question with its author.
	SearchAnswers(ctx context.Context, term string) ([]entity.Answer, error)
	// AdjustLikes adds delta to the counter without letting it drop below zero
	// and returns the stored value.
	AdjustLikes(ctx context.Context, answerID uint, delta int) (int, error)
}
