package mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// MockQuestionUsecase records the author ids it was called with so tests can
// check that identity came from the auth context.
type MockQuestionUsecase struct {
	ShouldFailCreateQuestion bool
	ShouldFailList           bool
	ShouldFailCreateAnswer   bool
	ShouldFailListAnswers    bool
	MissingQuestion          bool

	LastAuthorID   uint
	LastQuestionID uint

	Questions []entity.Question
	Answers   []entity.Answer
}

var _ usecasecontract.IQuestionUseCase = (*MockQuestionUsecase)(nil)

var mockTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func NewMockQuestionUsecase() *MockQuestionUsecase {
	return &MockQuestionUsecase{}
}

func (m *MockQuestionUsecase) CreateQuestion(ctx context.Context, authorID uint, title, content string) (*entity.Question, error) {
	m.LastAuthorID = authorID
	if m.ShouldFailCreateQuestion {
		return nil, errors.New("insert failed")
	}
	return &entity.Question{
		ID:        1,
		Title:     title,
		Content:   content,
		UserID:    authorID,
		User:      entity.User{ID: authorID, Username: "testuser"},
		Answers:   []entity.Answer{},
		CreatedAt: mockTime,
	}, nil
}

func (m *MockQuestionUsecase) ListQuestions(ctx context.Context) ([]entity.Question, error) {
	if m.ShouldFailList {
		return nil, errors.New("query failed")
	}
	return m.Questions, nil
}

func (m *MockQuestionUsecase) CreateAnswer(ctx context.Context, authorID, questionID uint, content string) (*entity.Answer, error) {
	m.LastAuthorID = authorID
	m.LastQuestionID = questionID
	if m.MissingQuestion {
		return nil, usecase.ErrQuestionNotFound
	}
	if m.ShouldFailCreateAnswer {
		return nil, fmt.Errorf("failed to create answer: %w", errors.New("insert failed"))
	}
	return &entity.Answer{
		ID:         10,
		Content:    content,
		UserID:     authorID,
		User:       entity.User{ID: authorID, Username: "testuser"},
		QuestionID: questionID,
		Question:   &entity.Question{ID: questionID, Title: "How?"},
		CreatedAt:  mockTime,
	}, nil
}

func (m *MockQuestionUsecase) ListAnswers(ctx context.Context, questionID uint) ([]entity.Answer, error) {
	m.LastQuestionID = questionID
	if m.ShouldFailListAnswers {
		return nil, errors.New("query failed")
	}
	return m.Answers, nil
}
