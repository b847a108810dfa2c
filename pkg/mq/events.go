package mq

import (
	"time"

	"github.com/google/uuid"
)

// Event is an interaction fact broadcast after the write that caused it succeeded.
type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	ActorID   string `json:"actor_id"`
	TargetID  string `json:"target_id"`
	Action    string `json:"action,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// event types, used as routing keys
const (
	VideoLikeEvent    = "like.video"
	CommentLikeEvent  = "like.comment"
	TweetLikeEvent    = "like.tweet"
	SubscriptionEvent = "subscription.toggle"
	CommentAddEvent   = "comment.create"
	VideoPublishEvent = "video.publish"
)

const InteractionExchange = "videohub_events"

func NewEvent(eventType, actorID, targetID, action string) *Event {
	return &Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}
}
