package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// LikeRepository is the GORM implementation of contract.ILikeRepository.
type LikeRepository struct {
	db *gorm.DB
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	return translateError(conn(ctx, r.db).Create(like).Error)
}

// DeleteLike hard-deletes the like; ErrNotFound means another request removed it first.
func (r *LikeRepository) DeleteLike(ctx context.Context, likeID uint) error {
	res := conn(ctx, r.db).Delete(&entity.Like{}, likeID)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *LikeRepository) GetLikeByUserAndAnswer(ctx context.Context, userID, answerID uint) (*entity.Like, error) {
	var like entity.Like
	err := conn(ctx, r.db).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		First(&like).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &like, nil
}

func (r *LikeRepository) CountLikesByAnswerID(ctx context.Context, answerID uint) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&entity.Like{}).Where("answer_id = ?", answerID).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
