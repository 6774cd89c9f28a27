package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/kafka"
	kafkaMocks "github.com/git-nard/wanderer-albay-guide-remake/infras/kafka/mocks"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/events"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
)

func waitForPublish(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publish")
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("publishes on the configured topic keyed by entity id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Kafka.EventTopic = "directory.changes"

		done := make(chan struct{})

		var sent kafka.Message
		mockClient.EXPECT().
			SendMessages(gomock.Any(), "directory.changes", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				sent = messages[0]
				close(done)

				return nil
			})

		publisher := events.New(mockClient, cfg)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		publisher.Publish(ctx, constant.EventAccommodationCreated, "accommodation-id")

		waitForPublish(t, done)

		assert.Equal(t, "accommodation-id", sent.Key)

		event, ok := sent.Value.(events.Event)
		assert.True(t, ok)
		assert.Equal(t, constant.EventAccommodationCreated, event.Name)
		assert.Equal(t, "accommodation-id", event.EntityID)
		assert.Equal(t, "test-user-id", event.ActorID)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("falls back to the default topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := kafkaMocks.NewMockClient(ctrl)

		done := make(chan struct{})

		mockClient.EXPECT().
			SendMessages(gomock.Any(), "wanderer.directory.events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				close(done)

				return nil
			})

		publisher := events.New(mockClient, &config.Config{})

		publisher.Publish(context.Background(), constant.EventReviewSubmitted, "review-id")

		waitForPublish(t, done)
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := kafkaMocks.NewMockClient(ctrl)

		done := make(chan struct{})

		mockClient.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				close(done)

				return errors.New("broker unavailable")
			})

		publisher := events.New(mockClient, &config.Config{})

		publisher.Publish(context.Background(), constant.EventReviewDeleted, "review-id")

		waitForPublish(t, done)
	})
}
