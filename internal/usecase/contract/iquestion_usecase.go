package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// IQuestionUseCase covers question and answer creation and listing.
type IQuestionUseCase interface {
	CreateQuestion(ctx context.Context, authorID uint, title, content string) (*entity.Question, error)
	ListQuestions(ctx context.Context) ([]entity.Question, error)
	CreateAnswer(ctx context.Context, authorID, questionID uint, content string) (*entity.Answer, error)
	ListAnswers(ctx context.Context, questionID uint) ([]entity.Answer, error)
}
