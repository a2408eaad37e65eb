package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"storyforge_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct {
	BaseEvent
}

func (pinged) EventName() string { return "test.pinged" }

func TestPublishSyncRunsHandlersInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	var order []int
	bus.Subscribe("test.pinged", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 1)
		return nil
	}))
	bus.Subscribe("test.pinged", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 2)
		return errors.New("second failed")
	}))
	bus.Subscribe("test.other", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 3)
		return nil
	}))

	err := bus.PublishSync(t.Context(), pinged{NewBaseEvent()})

	require.EqualError(t, err, "second failed")
	assert.Equal(t, []int{1, 2}, order)
}

func TestPublishSyncRecoversPanics(t *testing.T) {
	bus := NewInMemoryBus(nil)
	bus.Subscribe("test.pinged", HandlerFunc(func(context.Context, Event) error {
		panic("boom")
	}))

	err := bus.PublishSync(t.Context(), pinged{NewBaseEvent()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestPublishRunsAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	var calls atomic.Int32
	for range 3 {
		bus.Subscribe("test.pinged", HandlerFunc(func(ctx context.Context, _ Event) error {
			calls.Add(1)
			return ctx.Err()
		}))
	}

	ctx, cancel := context.WithCancel(t.Context())
	bus.Publish(ctx, pinged{NewBaseEvent()})
	cancel()
	bus.Wait()

	assert.Equal(t, int32(3), calls.Load())
}
