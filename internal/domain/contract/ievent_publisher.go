package contract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// ILikeEventPublisher announces committed like toggles.
type ILikeEventPublisher interface {
	PublishLikeEvent(ctx context.Context, event entity.LikeEvent) error
}
