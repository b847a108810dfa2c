package mq

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Publisher is what services depend on to emit events.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = NopPublisher{}
)

// NopPublisher drops every event. Used when RabbitMQ is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }

// Emit publishes event and only logs a failure; the triggering write has
// already been committed.
func Emit(ctx context.Context, p Publisher, event *Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish %s event %s failed: %v", event.Type, event.EventID, err)
	}
}
