package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/ownership"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type TweetService struct {
	tweets TweetStore
}

func NewTweetService(tweets TweetStore) *TweetService {
	return &TweetService{tweets: tweets}
}

func validateTweetContent(content, emptyMsg string) error {
	if utils.Blank(content) {
		return errno.ParamErr.WithMessage(emptyMsg)
	}
	if utf8.RuneCountInString(content) > constants.MaxTweetLength {
		return errno.ParamErr.WithMessage("Tweet too long, maximum 280 characters allowed")
	}
	return nil
}

func (s *TweetService) CreateTweet(ctx context.Context, caller identity.Caller, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content, "Content is required"); err != nil {
		return nil, err
	}
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	id, err := s.tweets.CreateTweet(ctx, &model.Tweet{Content: strings.TrimSpace(content), Owner: uid})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	created, err := s.tweets.GetTweetInfo(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "tweet %s missing after insert: %v", id.Hex(), err)
		return nil, errno.ServiceErr.WithMessage("Failed to create tweet")
	}
	return created, nil
}

func (s *TweetService) GetUserTweets(ctx context.Context, userID string) ([]model.Tweet, error) {
	uid, err := utils.ParseObjectID(userID, "User")
	if err != nil {
		return nil, err
	}
	tweets, err := s.tweets.GetUserTweetList(ctx, uid)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserTweetList failed")
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, caller identity.Caller, tweetID, newTweet string) (*model.Tweet, error) {
	if err := validateTweetContent(newTweet, "New tweet is required"); err != nil {
		return nil, err
	}
	tid, err := utils.ParseObjectID(tweetID, "Tweet")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Tweet](ctx, "Tweet", tid, caller, s.tweets.GetTweetInfo); err != nil {
		return nil, err
	}
	updated, err := s.tweets.UpdateTweetContent(ctx, tid, strings.TrimSpace(newTweet))
	if err != nil {
		return nil, notFoundOr(err, "Tweet", "dao.UpdateTweetContent failed")
	}
	return updated, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, caller identity.Caller, tweetID string) (*model.Tweet, error) {
	tid, err := utils.ParseObjectID(tweetID, "Tweet")
	if err != nil {
		return nil, err
	}
	if _, err = ownership.Check[*model.Tweet](ctx, "Tweet", tid, caller, s.tweets.GetTweetInfo); err != nil {
		return nil, err
	}
	deleted, err := s.tweets.DeleteTweet(ctx, tid)
	if err != nil {
		return nil, notFoundOr(err, "Tweet", "dao.DeleteTweet failed")
	}
	return deleted, nil
}
