package events

import "testing"

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	got := make([]string, 0, 2)
	bus.Subscribe(func(event Event) { got = append(got, "first:"+event.Message) })
	bus.Subscribe(func(event Event) { got = append(got, "second:"+event.Message) })

	bus.Publish(Event{Kind: KindCompletion, Message: "done"})

	if len(got) != 2 || got[0] != "first:done" || got[1] != "second:done" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Event{Kind: KindInfo})
	unsubscribe()
	bus.Publish(Event{Kind: KindInfo})

	if calls != 1 {
		t.Fatalf("expected 1 delivery after unsubscribe, got %d", calls)
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	NewBus().Publish(Event{Kind: KindError, Message: "nobody home"})
}
