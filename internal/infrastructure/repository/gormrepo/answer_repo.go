package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// AnswerRepository is the GORM implementation of contract.IAnswerRepository.
type AnswerRepository struct {
	db *gorm.DB
}

var _ contract.IAnswerRepository = (*AnswerRepository)(nil)

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func selectQuestionSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "user_id")
}

func (r *AnswerRepository) CreateAnswer(ctx context.Context, answer *entity.Answer) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(answer).Error; err != nil {
		return fmt.Errorf("failed to insert answer: %w", translateError(err))
	}
	return nil
}

func (r *AnswerRepository) GetAnswerByID(ctx context.Context, id uint) (*entity.Answer, error) {
	var answer entity.Answer
	err := conn(ctx, r.db).
		Preload("User", selectUserSummary).
		Preload("Question", selectQuestionSummary).
		First(&answer, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &answer, nil
}

func (r *AnswerRepository) GetAnswerForUpdate(ctx context.Context, id uint) (*entity.Answer, error) {
	db := conn(ctx, r.db)
	// SQLite has no row locks; its writers are already serialized per database.
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var answer entity.Answer
	if err := db.First(&answer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &answer, nil
}

func (r *AnswerRepository) ListAnswersByQuestionID(ctx context.Context, questionID uint) ([]entity.Answer, error) {
	answers := []entity.Answer{}
	err := conn(ctx, r.db).
		Preload("User", selectUserSummary).
		Where("question_id = ?", questionID).
		Order("likes DESC").Order("created_at DESC").Order("id DESC").
		Find(&answers).Error
	if err != nil {
		return nil, translateError(err)
	}
	return answers, nil
}

func (r *AnswerRepository) SearchAnswers(ctx context.Context, term string) ([]entity.Answer, error) {
	answers := []entity.Answer{}
	err := newestFirst(conn(ctx, r.db)).
		Preload("User", selectUserSummary).
		Preload("Question", selectQuestionSummary).
		Preload("Question.User", selectUserSummary).
		Where("LOWER(content) LIKE ? ESCAPE '!'", likePattern(term)).
		Find(&answers).Error
	if err != nil {
		return nil, translateError(err)
	}
	return answers, nil
}

func (r *AnswerRepository) AdjustLikes(ctx context.Context, answerID uint, delta int) (int, error) {
	db := conn(ctx, r.db)
	q := db.Model(&entity.Answer{}).Where("id = ?", answerID)
	if delta < 0 {
		q = q.Where("likes >= ?", -delta)
	}
	if err := q.UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error; err != nil {
		return 0, fmt.Errorf("failed to adjust likes: %w", translateError(err))
	}

	var answer entity.Answer
	if err := db.Select("id", "likes").First(&answer, answerID).Error; err != nil {
		return 0, translateError(err)
	}
	return answer.Likes, nil
}
