package events

import (
	"encoding/json"
	"time"
)

const (
	EventReservationCreated   = "ReservationCreated"
	EventReservationConfirmed = "ReservationConfirmed"
	EventReservationRejected  = "ReservationRejected"
	EventReservationUpdated   = "ReservationUpdated"
)

const TopicReservationEvents = "reservation.events"

// Envelope wraps every reservation event on the wire.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type ReservationPayload struct {
	ReservationID string `json:"reservation_id"`
	GuestID       string `json:"guest_id"`
	CategoryID    string `json:"category_id"`
	UnitID        string `json:"unit_id"`
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

// PartitionKey keeps all events of one reservation on one partition so
// downstream consumers see them in order.
func PartitionKey(reservationID string) []byte { return []byte(reservationID) }
