package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/forgo/catalog/internal/model"
)

// EventType represents the type of event
type EventType string

const (
	// Catalog change events
	EventCreated EventType = "catalog.created"
	EventUpdated EventType = "catalog.updated"
	EventDeleted EventType = "catalog.deleted"

	// System events
	EventHeartbeat EventType = "heartbeat"
)

// Event represents a server-sent event
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
	Kind string      `json:"-"` // Used for routing, not sent to client
}

// Change is the payload of a catalog change event
type Change struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	URL  string `json:"url"`
}

// Format returns the SSE formatted string
func (e *Event) Format() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + string(e.Type) + "\ndata: " + string(data) + "\n\n"
}

// Publisher receives catalog change events
type Publisher interface {
	Publish(event *Event)
}

// publishChange is a no-op when p is nil
func publishChange(p Publisher, typ EventType, kind, id string) {
	if p == nil {
		return
	}
	p.Publish(&Event{
		Type: typ,
		Kind: kind,
		Data: Change{Kind: kind, ID: id, URL: model.EntityURL(kind, id)},
	})
}

// AllKinds subscribes to changes of every entity kind
const AllKinds = ""

// Subscriber represents a connected SSE client
type Subscriber struct {
	ID     string
	Kind   string
	Events chan *Event
	Done   chan struct{}
}

// EventHub manages SSE subscriptions and event broadcasting
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]*Subscriber // kind -> subscriberID -> subscriber
	heartbeat   *time.Ticker
	done        chan struct{}
}

// NewEventHub creates a new event hub that heartbeats every interval
func NewEventHub(interval time.Duration) *EventHub {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	hub := &EventHub{
		subscribers: make(map[string]map[string]*Subscriber),
		done:        make(chan struct{}),
	}
	hub.heartbeat = time.NewTicker(interval)
	go hub.sendHeartbeats()
	return hub
}

// Subscribe adds a subscriber for one entity kind, or AllKinds
func (h *EventHub) Subscribe(kind, subscriberID string) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{
		ID:     subscriberID,
		Kind:   kind,
		Events: make(chan *Event, 100), // Buffer to prevent blocking
		Done:   make(chan struct{}),
	}

	if h.subscribers[kind] == nil {
		h.subscribers[kind] = make(map[string]*Subscriber)
	}
	h.subscribers[kind][subscriberID] = sub

	return sub
}

// Unsubscribe removes a subscriber
func (h *EventHub) Unsubscribe(kind, subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if kindSubs, ok := h.subscribers[kind]; ok {
		if sub, ok := kindSubs[subscriberID]; ok {
			close(sub.Done)
			close(sub.Events)
			delete(kindSubs, subscriberID)
		}
		if len(kindSubs) == 0 {
			delete(h.subscribers, kind)
		}
	}
}

// Publish sends an event to the subscribers of its kind and to AllKinds
// subscribers. A subscriber with a full buffer misses the event.
func (h *EventHub) Publish(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.deliver(h.subscribers[event.Kind], event)
	if event.Kind != AllKinds {
		h.deliver(h.subscribers[AllKinds], event)
	}
}

func (h *EventHub) deliver(subs map[string]*Subscriber, event *Event) {
	for _, sub := range subs {
		select {
		case sub.Events <- event:
		default:
		}
	}
}

// sendHeartbeats sends periodic heartbeats to all subscribers
func (h *EventHub) sendHeartbeats() {
	for {
		select {
		case <-h.heartbeat.C:
			event := &Event{
				Type: EventHeartbeat,
				Data: map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				},
			}
			h.mu.RLock()
			for _, kindSubs := range h.subscribers {
				h.deliver(kindSubs, event)
			}
			h.mu.RUnlock()
		case <-h.done:
			return
		}
	}
}

// Close stops the event hub
func (h *EventHub) Close() {
	close(h.done)
	h.heartbeat.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()

	for kind, kindSubs := range h.subscribers {
		for _, sub := range kindSubs {
			close(sub.Done)
			close(sub.Events)
		}
		delete(h.subscribers, kind)
	}
}

// SubscriberCount returns the number of subscribers for a kind
func (h *EventHub) SubscriberCount(kind string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[kind])
}
