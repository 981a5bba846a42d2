package service

import (
	"context"
	"encoding/json"
	"log"

	"account-plan-be/internal/dto"
	"account-plan-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the plan events topic into the audit log. It is
// the only reader of workflow lifecycle events.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditLog  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		auditLog:  auditLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishPlanEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal plan event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details := map[string]interface{}{
		"occurred_at": payload.OccurredAt,
	}
	for k, v := range payload.Payload {
		details[k] = v
	}
	cs.auditLog.Info("plan-events", payload.EventType, details)

	msg.Ack()
}
