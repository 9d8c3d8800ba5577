// Package events defines the booking domain events and their Kafka
// transport. Publishing is best-effort: a broker failure is logged and
// never fails the booking operation that triggered it.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topic and event type identifiers.
const (
	TopicBookingEvents = "booking.events"

	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

// CloudEvent is the envelope every published event is wrapped in.
type CloudEvent struct {
	SpecVersion string          `json:"specversion"`
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Type        string          `json:"type"`
	Time        time.Time       `json:"time"`
	Data        json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, err
	}
	return CloudEvent{
		SpecVersion: "1.0",
		ID:          uuid.New().String(),
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
		Data:        payload,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent envelope from raw bytes.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	err := json.Unmarshal(raw, &ce)
	return ce, err
}

// ParseData decodes the event payload into v.
func (ce CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(ce.Data, v)
}

// BookingCreatedEvent is published after a booking document is persisted.
type BookingCreatedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	WorkplaceID string    `json:"workplace_id"`
	Branch      string    `json:"branch,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published after a booking document is removed.
type BookingCancelledEvent struct {
	BookingID  string    `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
