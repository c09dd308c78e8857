package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// QuestionUsecase implements question and answer creation and listing.
type QuestionUsecase struct {
	questionRepo contract.IQuestionRepository
	answerRepo   contract.IAnswerRepository
	logger       usecasecontract.IAppLogger
	feedCache    contract.IQuestionFeedCache
}

var _ usecasecontract.IQuestionUseCase = (*QuestionUsecase)(nil)

// NewQuestionUsecase creates a new instance of QuestionUsecase
func NewQuestionUsecase(questionRepo contract.IQuestionRepository, answerRepo contract.IAnswerRepository, logger usecasecontract.IAppLogger) *QuestionUsecase {
	return &QuestionUsecase{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		logger:       logger,
	}
}

// SetFeedCache installs the cache consulted by ListQuestions.
func (uc *QuestionUsecase) SetFeedCache(cache contract.IQuestionFeedCache) {
	uc.feedCache = cache
}

// CreateQuestion stores a new question authored by authorID.
func (uc *QuestionUsecase) CreateQuestion(ctx context.Context, authorID uint, title, content string) (*entity.Question, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	question := &entity.Question{
		Title:   title,
		Content: content,
		UserID:  authorID,
	}
	if err := uc.questionRepo.CreateQuestion(ctx, question); err != nil {
		uc.logger.Errorf("failed to create question: %v", err)
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	uc.invalidateFeed(ctx)

	created, err := uc.questionRepo.GetQuestionByID(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created question: %w", err)
	}
	if created.Answers == nil {
		created.Answers = []entity.Answer{}
	}
	return created, nil
}

// ListQuestions returns every question, newest first, with nested answers.
func (uc *QuestionUsecase) ListQuestions(ctx context.Context) ([]entity.Question, error) {
	if uc.feedCache != nil {
		questions, ok, err := uc.feedCache.GetFeed(ctx)
		switch {
		case err != nil:
			metrics.FeedCacheRequestsTotal.WithLabelValues("error").Inc()
			uc.logger.Warnf("question feed cache read failed: %v", err)
		case ok:
			metrics.FeedCacheRequestsTotal.WithLabelValues("hit").Inc()
			uc.logger.Debugf("question feed served from cache (%d questions)", len(questions))
			return questions, nil
		default:
			metrics.FeedCacheRequestsTotal.WithLabelValues("miss").Inc()
		}
	}

	questions, err := uc.questionRepo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	if uc.feedCache != nil {
		if err := uc.feedCache.SetFeed(ctx, questions); err != nil {
			uc.logger.Warnf("question feed cache write failed: %v", err)
		}
	}
	return questions, nil
}

// CreateAnswer posts an answer to an existing question.
func (uc *QuestionUsecase) CreateAnswer(ctx context.Context, authorID, questionID uint, content string) (*entity.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	exists, err := uc.questionRepo.ExistsQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check question: %w", err)
	}
	if !exists {
		return nil, ErrQuestionNotFound
	}

	answer := &entity.Answer{
		Content:    content,
		UserID:     authorID,
		QuestionID: questionID,
	}
	if err := uc.answerRepo.CreateAnswer(ctx, answer); err != nil {
		uc.logger.Errorf("failed to create answer on question %d: %v", questionID, err)
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	uc.invalidateFeed(ctx)

	created, err := uc.answerRepo.GetAnswerByID(ctx, answer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created answer: %w", err)
	}
	return created, nil
}

// ListAnswers returns the answers of a question, most liked first.
func (uc *QuestionUsecase) ListAnswers(ctx context.Context, questionID uint) ([]entity.Answer, error) {
	answers, err := uc.answerRepo.ListAnswersByQuestionID(ctx, questionID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.Answer{}, nil
		}
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return answers, nil
}

func (uc *QuestionUsecase) invalidateFeed(ctx context.Context) {
	if uc.feedCache == nil {
		return
	}
	if err := uc.feedCache.InvalidateFeed(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate question feed: %v", err)
	}
}
