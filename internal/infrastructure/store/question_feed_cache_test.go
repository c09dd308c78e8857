package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

func newCache(t *testing.T) (*QuestionFeedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewQuestionFeedCache(rdb, time.Minute), mr
}

func TestQuestionFeedCache_SetGetInvalidate(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	_, ok, err := c.GetFeed(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	feed := []entity.Question{{
		ID:      1,
		Title:   "How do I toggle?",
		Content: "body",
		User:    entity.User{ID: 3, Username: "alice"},
		Answers: []entity.Answer{{ID: 9, Content: "like this", Likes: 2, User: entity.User{ID: 4, Username: "bob"}}},
	}}
	require.NoError(t, c.SetFeed(ctx, feed))
	assert.Equal(t, time.Minute, mr.TTL(questionFeedKey))

	got, ok, err := c.GetFeed(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].User.Username)
	assert.Equal(t, 2, got[0].Answers[0].Likes)

	require.NoError(t, c.InvalidateFeed(ctx))
	_, ok, err = c.GetFeed(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuestionFeedCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newCache(t)
	require.NoError(t, mr.Set(questionFeedKey, "{not json"))

	_, ok, err := c.GetFeed(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuestionFeedCache_ServerDown(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()

	_, _, err := c.GetFeed(context.Background())
	assert.Error(t, err)
}
