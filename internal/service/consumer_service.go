package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ogiri-game-be/internal/dto"
	"ogiri-game-be/internal/pkg/logger"
	"ogiri-game-be/pkg/events"
	pktNats "ogiri-game-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// ConsumerService bridges the in-process change feed to the outside world:
// NATS JetStream for durable subscribers and a Redis channel for websocket
// gateways. The write path never talks to either broker directly.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
	rdb       *redis.Client
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
	rdb *redis.Client,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		rdb:       rdb,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ChangeFeedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ChangeFeed", "Failed to unmarshal change message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	event := events.NewChangeEvent(payload.Table, payload.Action, map[string]interface{}{
		"entityId":   payload.EntityId,
		"topicId":    payload.TopicId,
		"occurredAt": payload.OccurredAt,
	})

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			cs.logger.Warn("ChangeFeed", "Failed to publish change event to NATS", map[string]interface{}{
				"event": event.EventType(),
				"error": err.Error(),
			})
		}
	}

	if cs.rdb != nil {
		channel := fmt.Sprintf("realtime:%s", payload.Table)
		if err := cs.rdb.Publish(ctx, channel, msg.Payload).Err(); err != nil {
			cs.logger.Warn("ChangeFeed", "Failed to publish change event to Redis", map[string]interface{}{
				"channel": channel,
				"error":   err.Error(),
			})
		}
	}

	msg.Ack()
}
