package events

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	EventReservationCreated = "reservation_created"
	EventReservationDeleted = "reservation_deleted"
	EventReportGenerated    = "report_generated"
)

// ReservationEventPayload describes the minimal reservation snapshot for event consumers.
type ReservationEventPayload struct {
	ReservationID int64     `json:"reservation_id"`
	GuestName     string    `json:"guest_name"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	CreatedAt     time.Time `json:"created_at"`
	ActiveCount   int       `json:"active_count"`
}

// ReportEventPayload summarizes a generated report.
type ReportEventPayload struct {
	Rows       int    `json:"rows"`
	GrandTotal int64  `json:"grand_total"`
	Currency   string `json:"currency"`
}

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// Decode unmarshals the payload into v.
func (e *Event) Decode(v interface{}) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(e.Payload, v)
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// ErrorHandler receives errors returned by subscribers.
type ErrorHandler func(event *Event, err error)

// EventBus provides in-process pub/sub for events. It is owned by the
// single console goroutine and is not safe for concurrent use.
type EventBus struct {
	subscribers map[string][]EventHandler
	onError     ErrorHandler
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// OnError sets the callback used for handler failures.
func (b *EventBus) OnError(handler ErrorHandler) {
	b.onError = handler
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	// A handler subscribing during delivery is not called for this event.
	handlers := b.subscribers[event.Type]
	for _, handler := range handlers {
		if err := handler(event); err != nil && b.onError != nil {
			b.onError(event, err)
		}
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	event, err := NewJSONEvent(eventType, payload)
	if err != nil {
		return err
	}

	b.Publish(&event)
	return nil
}

// NewJSONEvent builds an Event with JSON payload for manual publishing.
func NewJSONEvent(eventType string, payload interface{}) (Event, error) {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(payload)
	if err != nil {
		return Event{}, err
	}

	return Event{Type: eventType, Payload: raw, CreatedAt: time.Now()}, nil
}
