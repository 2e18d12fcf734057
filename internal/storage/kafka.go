package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishEngagement(ctx context.Context, ev domain.EngagementEvent) error {
	msg, err := engagementMessage(ev)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

// Messages are keyed by post id so every event for a post lands on the
// same partition and the consumer sees them in order.
func engagementMessage(ev domain.EngagementEvent) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(ev.PostID)),
		Value: payload,
	}, nil
}
