package constants

import "time"

// mongo collections
const (
	UserCollection         = "users"
	VideoCollection        = "videos"
	CommentCollection      = "comments"
	LikeCollection         = "likes"
	TweetCollection        = "tweets"
	SubscriptionCollection = "subscriptions"
	PlaylistCollection     = "playlists"
)

// pagination
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

const (
	DefaultQueryTimeout = 10 * time.Second
	MaxCommentLength    = 500
	MaxTweetLength      = 280
)

// toggle actions reported to clients
const (
	ActionLiked        = "liked"
	ActionUnliked      = "unliked"
	ActionSubscribed   = "subscribed"
	ActionUnsubscribed = "unsubscribed"
)
