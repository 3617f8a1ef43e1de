package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan StatusChangedEvent, 1)

	unsub := bus.Subscribe(func(e StatusChangedEvent) {
		received <- e
	})
	defer unsub()

	bus.Publish(StatusChangedEvent{From: "ok", To: "error", Timestamp: "2026-08-24T10:30:00Z"})

	select {
	case e := <-received:
		if e.From != "ok" || e.To != "error" {
			t.Errorf("got %+v, want ok->error", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_TypeIsolation(t *testing.T) {
	bus := New()
	status := make(chan StatusChangedEvent, 1)
	cmds := make(chan UserCommandEvent, 1)

	defer bus.Subscribe(func(e StatusChangedEvent) { status <- e })()
	defer bus.Subscribe(func(e UserCommandEvent) { cmds <- e })()

	bus.Publish(UserCommandEvent{Action: "set", On: true})

	select {
	case e := <-cmds:
		if e.Action != "set" {
			t.Errorf("command event = %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for command event")
	}

	select {
	case e := <-status:
		t.Errorf("status handler received unrelated event %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan OutputErrorEvent, 1)

	unsub := bus.Subscribe(func(e OutputErrorEvent) { received <- e })
	unsub()

	bus.Publish(OutputErrorEvent{Error: "write failed"})

	select {
	case e := <-received:
		t.Errorf("unsubscribed handler received %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

// Subscribers serialize events for hosts; the field names are the contract.
func TestStatusChangedEvent_JSONShape(t *testing.T) {
	data, err := json.Marshal(StatusChangedEvent{
		From:      "ok",
		To:        "error",
		Timestamp: "2026-08-24T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"from":"ok","to":"error","timestamp":"2026-08-24T10:30:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestBus_UnknownHandlerIsNoop(t *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(s string) {})
	// Must not panic.
	unsub()
}
