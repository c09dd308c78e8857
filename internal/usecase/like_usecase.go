package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// LikeUsecase handles liking and unliking answers.
type LikeUsecase struct {
	likeRepo   contract.ILikeRepository
	answerRepo contract.IAnswerRepository
	tx         contract.ITransactor
	logger     usecasecontract.IAppLogger
	publisher  contract.ILikeEventPublisher
	feedCache  contract.IQuestionFeedCache
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(likeRepo contract.ILikeRepository, answerRepo contract.IAnswerRepository, tx contract.ITransactor, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		likeRepo:   likeRepo,
		answerRepo: answerRepo,
		tx:         tx,
		logger:     logger,
	}
}

// SetEventPublisher installs the publisher notified after each committed toggle.
func (u *LikeUsecase) SetEventPublisher(publisher contract.ILikeEventPublisher) {
	u.publisher = publisher
}

// SetFeedCache installs the question feed cache invalidated after each toggle.
func (u *LikeUsecase) SetFeedCache(cache contract.IQuestionFeedCache) {
	u.feedCache = cache
}

// ToggleLike likes the answer if the user has not liked it yet, otherwise
// removes the like. The like row and the answer counter change in one
// transaction with the answer row locked, so the counter always equals the
// number of like rows.
func (u *LikeUsecase) ToggleLike(ctx context.Context, userID, answerID uint) (*entity.LikeResult, error) {
	var result entity.LikeResult
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := u.answerRepo.GetAnswerForUpdate(ctx, answerID); err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return ErrAnswerNotFound
			}
			return fmt.Errorf("failed to load answer: %w", err)
		}

		existing, err := u.likeRepo.GetLikeByUserAndAnswer(ctx, userID, answerID)
		if err != nil && !errors.Is(err, contract.ErrNotFound) {
			return fmt.Errorf("failed to retrieve existing like: %w", err)
		}

		delta := 1
		result.State = entity.LikeStateLiked
		if existing != nil {
			if err := u.likeRepo.DeleteLike(ctx, existing.ID); err != nil {
				if errors.Is(err, contract.ErrNotFound) {
					return ErrLikeConflict
				}
				return fmt.Errorf("failed to delete like: %w", err)
			}
			delta = -1
			result.State = entity.LikeStateUnliked
		} else {
			like := &entity.Like{UserID: userID, AnswerID: answerID}
			if err := u.likeRepo.CreateLike(ctx, like); err != nil {
				if errors.Is(err, contract.ErrDuplicate) {
					return ErrLikeConflict
				}
				return fmt.Errorf("failed to create like: %w", err)
			}
		}

		likes, err := u.answerRepo.AdjustLikes(ctx, answerID, delta)
		if err != nil {
			return fmt.Errorf("failed to update like count: %w", err)
		}
		result.Likes = likes
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.LikeTogglesTotal.WithLabelValues(string(result.State)).Inc()
	u.afterToggle(ctx, userID, answerID, result)
	return &result, nil
}

// afterToggle runs the post-commit side effects. Their failures are logged only.
func (u *LikeUsecase) afterToggle(ctx context.Context, userID, answerID uint, result entity.LikeResult) {
	if u.feedCache != nil {
		if err := u.feedCache.InvalidateFeed(ctx); err != nil {
			u.logger.Warnf("failed to invalidate question feed after toggle on answer %d: %v", answerID, err)
		}
	}
	if u.publisher != nil {
		event := entity.LikeEvent{
			Type:       entity.LikeEventType,
			State:      result.State,
			UserID:     userID,
			AnswerID:   answerID,
			Likes:      result.Likes,
			OccurredAt: time.Now().UTC(),
		}
		if err := u.publisher.PublishLikeEvent(ctx, event); err != nil {
			u.logger.Warnf("failed to publish like event for answer %d: %v", answerID, err)
		}
	}
}
