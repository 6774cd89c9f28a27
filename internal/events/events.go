// Package events publishes directory change events to Kafka. Publishing
// is fire and forget: it runs off the request goroutine and a failed
// publish is logged, never surfaced to the originating request.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/kafka"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultEventTopic = "wanderer.directory.events"

type Event struct {
	Name       string    `json:"name"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, name, entityID string)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	topic := cfg.Kafka.EventTopic
	if topic == constant.Empty {
		topic = defaultEventTopic
	}

	return &publisherImpl{
		client: client,
		topic:  topic,
	}
}

// Publish emits the event keyed by entity id so events for one entity
// stay ordered within a partition. The actor is captured from the
// request context before the send detaches from it.
func (p *publisherImpl) Publish(ctx context.Context, name, entityID string) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event := Event{
		Name:       name,
		EntityID:   entityID,
		ActorID:    actor,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   entityID,
			Value: event,
		}

		if err := p.client.SendMessages(c, p.topic, message); err != nil {
			log.Error().Err(err).Str("event", name).Str("entityID", entityID).Msg("failed to publish event")
		}
	}()
}
