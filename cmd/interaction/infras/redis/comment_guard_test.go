package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHashKeyNormalizesContent(t *testing.T) {
	assert.Equal(t, hashKey("u1", "Nice video"), hashKey("u1", "  nice VIDEO "))
	assert.NotEqual(t, hashKey("u1", "Nice video"), hashKey("u2", "Nice video"))
	assert.Equal(t, "comment_rate_limit:u1", rateKey("u1"))
}

func TestGuardDisabledWithoutClient(t *testing.T) {
	var g *CommentGuard
	assert.NoError(t, g.Allow(context.Background(), "u1", "hi"))
	assert.NotPanics(t, func() { g.Record(context.Background(), "u1", "hi") })

	g = NewCommentGuard(nil, GuardOptions{RateLimit: 1})
	assert.NoError(t, g.Allow(context.Background(), "u1", "hi"))
}

func TestGuardFailsOpenWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	g := NewCommentGuard(client, GuardOptions{RateLimit: 1})
	assert.NoError(t, g.Allow(context.Background(), "u1", "hi"))
	assert.NotPanics(t, func() { g.Record(context.Background(), "u1", "hi") })
}
