package ws

import (
	"encoding/json"
	"testing"
)

func TestPublishPreservesOrder(t *testing.T) {
	hub := NewHub(nil)

	hub.Publish(Event{Type: "stock_update", Action: "first"})
	hub.Publish(Event{Type: "stock_update", Action: "second"})
	hub.Publish(Event{Type: "stock_update", Action: "third"})

	for _, want := range []string{"first", "second", "third"} {
		var got Event
		select {
		case msg := <-hub.Broadcast:
			if err := json.Unmarshal(msg, &got); err != nil {
				t.Fatalf("unmarshal broadcast: %v", err)
			}
		default:
			t.Fatal("Publish did not enqueue the event synchronously")
		}
		if got.Action != want {
			t.Errorf("event action = %q, want %q (order must match publish order)", got.Action, want)
		}
	}
}

func TestPublishOnNilHub(t *testing.T) {
	var hub *Hub
	// Tidak boleh panic
	hub.Publish(Event{Type: "stock_update", Action: "noop"})
}
