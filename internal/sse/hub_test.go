package sse

import (
	"encoding/json"
	"testing"
)

func TestHub_SendDeliversToOwnerOnly(t *testing.T) {
	hub := NewHub()
	alice := hub.Register("c1", "alice")
	bob := hub.Register("c2", "bob")

	hub.Send(&AlertEvent{Event: EventPriceDrop, UserID: "alice", ProductID: "7", BestPrice: 22})

	select {
	case raw := <-alice.Events:
		var ev AlertEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if ev.ProductID != "7" || ev.BestPrice != 22 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("owner received nothing")
	}

	select {
	case <-bob.Events:
		t.Fatal("event leaked to another user")
	default:
	}
}

func TestHub_SendReachesAllStreamsOfUser(t *testing.T) {
	hub := NewHub()
	phone := hub.Register("phone", "alice")
	web := hub.Register("web", "alice")

	hub.Send(&AlertEvent{Event: EventTargetPrice, UserID: "alice"})

	for _, c := range []*Client{phone, web} {
		select {
		case <-c.Events:
		default:
			t.Fatalf("stream %s received nothing", c.ID)
		}
	}
}

func TestHub_SendDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	c := hub.Register("c1", "alice")

	// Fill the buffer without draining; extra sends must not block.
	for i := 0; i < cap(c.Events)+5; i++ {
		hub.Send(&AlertEvent{Event: EventPriceDrop, UserID: "alice"})
	}

	if got := len(c.Events); got != cap(c.Events) {
		t.Errorf("buffered = %d, want %d", got, cap(c.Events))
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	c := hub.Register("c1", "alice")
	if hub.ClientCount() != 1 {
		t.Fatalf("client count = %d, want 1", hub.ClientCount())
	}

	hub.Unregister("c1")
	if hub.ClientCount() != 0 {
		t.Fatalf("client count = %d, want 0", hub.ClientCount())
	}
	if _, ok := <-c.Events; ok {
		t.Error("channel should be closed after unregister")
	}

	// Unregistering twice is a no-op.
	hub.Unregister("c1")
}
