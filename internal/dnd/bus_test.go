package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_OrderAndUnsubscribe(t *testing.T) {
	bus := NewBus()
	var calls []string

	unsubA := bus.Subscribe(func(ItemDropped) { calls = append(calls, "a") })
	bus.Subscribe(func(ItemDropped) { calls = append(calls, "b") })
	assert.Equal(t, 2, bus.Len())

	bus.Emit(ItemDropped{})
	assert.Equal(t, []string{"a", "b"}, calls)

	unsubA()
	unsubA()
	assert.Equal(t, 1, bus.Len())

	calls = nil
	bus.Emit(ItemDropped{})
	assert.Equal(t, []string{"b"}, calls)
}

func TestBus_UnsubscribeDuringEmit(t *testing.T) {
	bus := NewBus()
	calls := 0
	var unsub func()
	unsub = bus.Subscribe(func(ItemDropped) {
		calls++
		unsub()
	})

	bus.Emit(ItemDropped{})
	bus.Emit(ItemDropped{})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}
