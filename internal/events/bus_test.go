package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.Subscribe(EventVideoRemoved, 4)
	bus.Publish(NewVideoRemoved(7, "/videos/a.mkv"))

	select {
	case e := <-ch:
		if e.EventType() != EventVideoRemoved {
			t.Errorf("EventType = %q, want %q", e.EventType(), EventVideoRemoved)
		}
		if e.VideoID() != 7 {
			t.Errorf("VideoID = %d, want 7", e.VideoID())
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	removed := bus.Subscribe(EventVideoRemoved, 4)
	bus.Publish(NewScanProgress(1, 10, "/videos"))

	select {
	case e := <-removed:
		t.Fatalf("unexpected event %q on removed channel", e.EventType())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	all := bus.SubscribeAll(4)
	bus.Publish(NewScanProgress(1, 10, "/videos"))
	bus.Publish(NewVideoRemoved(3, "/videos/b.mkv"))

	var types []string
	for range 2 {
		select {
		case e := <-all:
			types = append(types, e.EventType())
		case <-time.After(time.Second):
			t.Fatal("missing event")
		}
	}
	if types[0] != EventScanProgress || types[1] != EventVideoRemoved {
		t.Errorf("types = %v", types)
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.Subscribe(EventVideoRemoved, 1)
	bus.Publish(NewVideoRemoved(1, "/a"))
	bus.Publish(NewVideoRemoved(2, "/b")) // dropped, channel full

	e := <-ch
	if e.VideoID() != 1 {
		t.Errorf("VideoID = %d, want 1", e.VideoID())
	}
	select {
	case e := <-ch:
		t.Fatalf("unexpected second event %d", e.VideoID())
	default:
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.Subscribe(EventVideoRemoved, 1)
	bus.Unsubscribe(ch)

	// Channel is closed after unsubscribe.
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}

	// Publishing after unsubscribe must not panic.
	bus.Publish(NewVideoRemoved(1, "/a"))
}

func TestBus_Close(t *testing.T) {
	bus := NewBus(nil, nil)
	ch := bus.SubscribeAll(1)

	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
	// Double close is fine.
	if err := bus.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	// Publish after close is a no-op.
	bus.Publish(NewVideoRemoved(1, "/a"))
}
