package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

const questionFeedKey = "questions:feed"

// QuestionFeedCache stores the serialized question feed in Redis.
type QuestionFeedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IQuestionFeedCache = (*QuestionFeedCache)(nil)

func NewQuestionFeedCache(rdb *redis.Client, ttl time.Duration) *QuestionFeedCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &QuestionFeedCache{rdb: rdb, ttl: ttl}
}

func (c *QuestionFeedCache) GetFeed(ctx context.Context) ([]entity.Question, bool, error) {
	b, err := c.rdb.Get(ctx, questionFeedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var questions []entity.Question
	if err := json.Unmarshal(b, &questions); err != nil {
		// a corrupt entry counts as a miss
		return nil, false, nil
	}
	return questions, true, nil
}

func (c *QuestionFeedCache) SetFeed(ctx context.Context, questions []entity.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, questionFeedKey, data, c.ttl).Err()
}

func (c *QuestionFeedCache) InvalidateFeed(ctx context.Context) error {
	return c.rdb.Del(ctx, questionFeedKey).Err()
}
