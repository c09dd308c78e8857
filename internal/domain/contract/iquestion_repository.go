package contract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// IQuestionRepository persists questions. Read methods preload the author and
// the answers (each with its author), newest first.
type IQuestionRepository interface {
	CreateQuestion(ctx context.Context, question *entity.Question) error
	GetQuestionByID(ctx context.Context, id uint) (*entity.Question, error)
	ExistsQuestion(ctx context.Context, id uint) (bool, error)
	ListQuestions(ctx context.Context) ([]entity.Question, error)
	// SearchQuestions matches term case-insensitively against title or content.
	SearchQuestions(ctx context.Context, term string) ([]entity.Question, error)
}
