package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/database"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/repository/gormrepo"
)

// store is a migrated in-memory SQLite database with its repositories.
type store struct {
	db        *gorm.DB
	users     *gormrepo.UserRepository
	questions *gormrepo.QuestionRepository
	answers   *gormrepo.AnswerRepository
	likes     *gormrepo.LikeRepository
	tx        *gormrepo.Transactor
}

func newStore(t *testing.T) store {
	t.Helper()
	d, err := database.NewDatabase(database.Options{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate())
	t.Cleanup(func() { _ = d.Close() })

	return store{
		db:        d.DB,
		users:     gormrepo.NewUserRepository(d.DB),
		questions: gormrepo.NewQuestionRepository(d.DB),
		answers:   gormrepo.NewAnswerRepository(d.DB),
		likes:     gormrepo.NewLikeRepository(d.DB),
		tx:        gormrepo.NewTransactor(d.DB),
	}
}

func (s store) user(t *testing.T, name string) *entity.User {
	t.Helper()
	u := &entity.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, s.users.CreateUser(context.Background(), u))
	return u
}

func (s store) question(t *testing.T, author uint, title, content string) *entity.Question {
	t.Helper()
	q := &entity.Question{Title: title, Content: content, UserID: author}
	require.NoError(t, s.questions.CreateQuestion(context.Background(), q))
	return q
}

func (s store) answer(t *testing.T, author, questionID uint, content string) *entity.Answer {
	t.Helper()
	a := &entity.Answer{Content: content, UserID: author, QuestionID: questionID}
	require.NoError(t, s.answers.CreateAnswer(context.Background(), a))
	return a
}

func (s store) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

// likesOf returns the stored counter and the number of like rows for an answer.
func (s store) likesOf(t *testing.T, answerID uint) (counter int, rows int64) {
	t.Helper()
	var a entity.Answer
	require.NoError(t, s.db.First(&a, answerID).Error)
	rows, err := s.likes.CountLikesByAnswerID(context.Background(), answerID)
	require.NoError(t, err)
	return a.Likes, rows
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (l *recordingLogger) Debugf(string, ...interface{}) {}
func (l *recordingLogger) Infof(string, ...interface{}) {}
func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warningf(format string, args ...interface{}) { l.Warnf(format, args...) }
func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Fatalf(format string, args ...interface{}) { l.Errorf(format, args...) }

type fakeFeedCache struct {
	mu          sync.Mutex
	feed        []entity.Question
	cached      bool
	getErr      error
	gets, sets  int
	invalidated int
}

func (c *fakeFeedCache) GetFeed(context.Context) ([]entity.Question, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.feed, c.cached, nil
}

func (c *fakeFeedCache) SetFeed(_ context.Context, questions []entity.Question) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.feed, c.cached = questions, true
	return nil
}

func (c *fakeFeedCache) InvalidateFeed(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.feed, c.cached = nil, false
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entity.LikeEvent
	err    error
}

func (p *fakePublisher) PublishLikeEvent(_ context.Context, event entity.LikeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

var errBoom = errors.New("boom")
