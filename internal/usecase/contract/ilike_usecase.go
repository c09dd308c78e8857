package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

type ILikeUseCase interface {
	ToggleLike(ctx context.Context, userID, answerID uint) (*entity.LikeResult, error)
}
