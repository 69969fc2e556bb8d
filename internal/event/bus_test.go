package event

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	first, unsubFirst := bus.Subscribe()
	second, unsubSecond := bus.Subscribe()
	defer unsubFirst()
	defer unsubSecond()

	bus.Publish(New(TypeRecordCreated, "users", map[string]string{"id": "6"}))

	for _, ch := range []<-chan Event{first, second} {
		got := <-ch
		assert.Equal(t, TypeRecordCreated, got.Type)
		assert.Equal(t, "users", got.Topic)
		assert.NotEmpty(t, got.ID)
		assert.NotEmpty(t, got.Timestamp)
	}
}

func TestBusDropsWhenSubscriberIsFull(t *testing.T) {
	bus := NewBus()
	var dropped atomic.Int32
	bus.OnDrop(func(Event) { dropped.Add(1) })

	_, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+5; i++ {
		bus.Publish(New(TypeLogAppended, "logs", i))
	}

	assert.Equal(t, int32(5), dropped.Load())
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	require.Equal(t, 1, bus.Subscribers())

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.Subscribers())

	bus.Publish(New(TypeSettingsSaved, "settings", nil))
}
