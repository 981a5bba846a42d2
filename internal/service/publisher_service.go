package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"account-plan-be/internal/dto"
	"account-plan-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishEvent(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) Publish(_ context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", ps.topicName, err)
	}
	return nil
}

func (ps *publisherService) PublishEvent(ctx context.Context, event events.Event) error {
	payload := dto.PublishPlanEventMessage{
		EventType:  event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp().Format(time.RFC3339),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventType(), err)
	}
	return ps.Publish(ctx, raw)
}
