package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=producer.go -destination=mock_producer.go -package=events

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes envelopes to the topic named by their type.
type Producer struct {
	w Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{w: w}
}

func (p *Producer) Publish(ctx context.Context, e Envelope) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	msg := kafka.Message{
		Topic: e.Type,
		Key:   []byte(e.Key),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.EventID)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("can't publish event", zap.String("topic", e.Type), zap.String("key", e.Key), zap.Error(err))
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.w.Close()
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error { return nil }

func (NopPublisher) Close() error { return nil }
