package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// SearchUsecase runs keyword search over questions and answers.
type SearchUsecase struct {
	questionRepo contract.IQuestionRepository
	answerRepo   contract.IAnswerRepository
}

var _ usecasecontract.ISearchUseCase = (*SearchUsecase)(nil)

func NewSearchUsecase(questionRepo contract.IQuestionRepository, answerRepo contract.IAnswerRepository) *SearchUsecase {
	return &SearchUsecase{questionRepo: questionRepo, answerRepo: answerRepo}
}

// Search matches term case-insensitively against question titles and
// contents and answer contents. Both lists are newest first.
func (uc *SearchUsecase) Search(ctx context.Context, term string) (*entity.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrSearchTermRequired
	}

	var (
		questions []entity.Question
		answers   []entity.Answer
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = uc.questionRepo.SearchQuestions(gCtx, term)
		if err != nil {
			return fmt.Errorf("failed to search questions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		answers, err = uc.answerRepo.SearchAnswers(gCtx, term)
		if err != nil {
			return fmt.Errorf("failed to search answers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.SearchResult{
		Questions:  questions,
		Answers:    answers,
		SearchTerm: term,
	}, nil
}
