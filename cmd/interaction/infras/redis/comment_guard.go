package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const (
	// comment_rate_limit:{user_id}
	CommentRateLimitKeyTemplate = "comment_rate_limit:%s"
	// comment_hash:{user_id}:{content_hash}
	CommentHashKeyTemplate = "comment_hash:%s:%s"
)

type GuardOptions struct {
	// RateLimit is the number of comments a user may post per RateWindow.
	RateLimit       int64
	RateWindow      time.Duration
	DuplicateWindow time.Duration
}

// CommentGuard throttles comment posting per user and rejects the same
// content posted twice inside DuplicateWindow. Redis failures never block a
// comment.
type CommentGuard struct {
	client *redis.Client
	opts   GuardOptions
}

func NewCommentGuard(client *redis.Client, opts GuardOptions) *CommentGuard {
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}
	if opts.DuplicateWindow <= 0 {
		opts.DuplicateWindow = 5 * time.Minute
	}
	return &CommentGuard{client: client, opts: opts}
}

// Allow checks the rate limit and duplicate window for userID.
func (g *CommentGuard) Allow(ctx context.Context, userID, content string) error {
	if g == nil || g.client == nil {
		return nil
	}
	if g.opts.RateLimit > 0 {
		count, err := g.client.Get(ctx, rateKey(userID)).Int64()
		switch {
		case err == redis.Nil:
		case err != nil:
			hlog.CtxWarnf(ctx, "Failed to check rate limit for user %s: %v", userID, err)
		case count >= g.opts.RateLimit:
			return errno.TooManyRequestsErr.WithMessage("Comment rate limit exceeded, please try again later")
		}
	}

	exists, err := g.client.Exists(ctx, hashKey(userID, content)).Result()
	if err != nil {
		hlog.CtxWarnf(ctx, "Failed to check duplicate comment for user %s: %v", userID, err)
		return nil
	}
	if exists > 0 {
		return errno.TooManyRequestsErr.WithMessage("Duplicate comment detected, please wait before posting similar content")
	}
	return nil
}

// Record counts a posted comment against the limits.
func (g *CommentGuard) Record(ctx context.Context, userID, content string) {
	if g == nil || g.client == nil {
		return
	}
	pipe := g.client.TxPipeline()
	pipe.Incr(ctx, rateKey(userID))
	pipe.Expire(ctx, rateKey(userID), g.opts.RateWindow)
	pipe.Set(ctx, hashKey(userID, content), "1", g.opts.DuplicateWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		hlog.CtxWarnf(ctx, "Failed to record comment for user %s: %v", userID, err)
	}
}

func rateKey(userID string) string {
	return fmt.Sprintf(CommentRateLimitKeyTemplate, userID)
}

func hashKey(userID, content string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(content))))
	return fmt.Sprintf(CommentHashKeyTemplate, userID, hex.EncodeToString(sum[:]))
}
