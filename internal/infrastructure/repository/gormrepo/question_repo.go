package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// QuestionRepository is the GORM implementation of contract.IQuestionRepository.
type QuestionRepository struct {
	db *gorm.DB
}

var _ contract.IQuestionRepository = (*QuestionRepository)(nil)

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// withThread preloads the author and the answers with their authors.
func withThread(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", selectUserSummary).
		Preload("Answers", newestFirst).
		Preload("Answers.User", selectUserSummary)
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *entity.Question) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(question).Error; err != nil {
		return fmt.Errorf("failed to insert question: %w", translateError(err))
	}
	return nil
}

func (r *QuestionRepository) GetQuestionByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	if err := withThread(conn(ctx, r.db)).First(&question, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

func (r *QuestionRepository) ExistsQuestion(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&entity.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]entity.Question, error) {
	questions := []entity.Question{}
	if err := newestFirst(withThread(conn(ctx, r.db))).Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

func (r *QuestionRepository) SearchQuestions(ctx context.Context, term string) ([]entity.Question, error) {
	pattern := likePattern(term)
	questions := []entity.Question{}
	err := newestFirst(withThread(conn(ctx, r.db))).
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(content) LIKE ? ESCAPE '!'", pattern, pattern).
		Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}
