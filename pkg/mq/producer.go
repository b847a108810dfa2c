package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishes
	mu sync.Mutex
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open a channel")
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := declareTopology(ch); err != nil {
		producer.Close()
		return nil, errors.WithMessage(err, "failed to setup topology")
	}

	hlog.Info("Connect RabbitMQ Success")
	return producer, nil
}

// exchangeDeclarer is the part of *amqp091.Channel the topology needs.
type exchangeDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
}

// declareTopology declares only the event exchange. Consumers own their
// queues and bindings; events published with no bound queue are dropped.
func declareTopology(ch exchangeDeclarer) error {
	err := ch.ExchangeDeclare(
		InteractionExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "failed to declare interaction exchange")
	}
	return nil
}

func (p *Producer) Publish(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		InteractionExchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	hlog.CtxDebugf(ctx, "Published event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
