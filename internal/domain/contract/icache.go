package contract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// IQuestionFeedCache caches the full question feed.
type IQuestionFeedCache interface {
	// GetFeed reports false on a miss.
	GetFeed(ctx context.Context) ([]entity.Question, bool, error)
	SetFeed(ctx context.Context, questions []entity.Question) error
	InvalidateFeed(ctx context.Context) error
}
