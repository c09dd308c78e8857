package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

type ISearchUseCase interface {
	Search(ctx context.Context, term string) (*entity.SearchResult, error)
}
