package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishInSubscriptionOrder(t *testing.T) {
	bus := New[int]()
	var got []int
	bus.Subscribe(func(n int) { got = append(got, n) })
	bus.Subscribe(func(n int) { got = append(got, n*10) })

	bus.Publish(1)

	assert.Equal(t, []int{1, 10}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New[string]()
	called := false
	unsub := bus.Subscribe(func(string) { called = true })

	unsub()
	unsub()
	bus.Publish("x")

	assert.False(t, called, "handler should not be called after unsubscribe")
	assert.Equal(t, 0, bus.Count())
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := New[int]()
	calls := 0
	var unsub func()
	unsub = bus.Subscribe(func(int) {
		calls++
		unsub()
	})

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, calls)
}
