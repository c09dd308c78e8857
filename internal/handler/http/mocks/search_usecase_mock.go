package mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

type MockSearchUsecase struct {
	ShouldFail bool
	Result     entity.SearchResult
}

var _ usecasecontract.ISearchUseCase = (*MockSearchUsecase)(nil)

func NewMockSearchUsecase() *MockSearchUsecase {
	return &MockSearchUsecase{}
}

func (m *MockSearchUsecase) Search(ctx context.Context, term string) (*entity.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, usecase.ErrSearchTermRequired
	}
	if m.ShouldFail {
		return nil, errors.New("search failed")
	}
	result := m.Result
	result.SearchTerm = term
	return &result, nil
}
