package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

// Publisher pushes reservation lifecycle events to Kafka. Publishing is
// fire-and-forget: a broker outage never fails a booking operation.
type Publisher interface {
	PublishReservationEvent(ctx context.Context, eventType string, r *models.Reservation)
	Close() error
}

type kafkaPublisher struct {
	w        *kafka.Writer
	producer string
}

func NewKafkaPublisher(brokers []string, producer string) Publisher {
	return &kafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicReservationEvents,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					utils.Logger.WithError(err).Warn("Failed to publish reservation events")
				}
			},
		},
		producer: producer,
	}
}

func (p *kafkaPublisher) PublishReservationEvent(ctx context.Context, eventType string, r *models.Reservation) {
	payload := ReservationPayload{
		ReservationID: r.ID.String(),
		GuestID:       r.GuestID.String(),
		CategoryID:    r.CategoryID.String(),
		UnitID:        r.UnitID.String(),
		DateFrom:      r.DateFrom.Format("2006-01-02"),
		DateTo:        r.DateTo.Format("2006-01-02"),
		Status:        string(r.Status),
	}
	if r.Reason != nil {
		payload.Reason = *r.Reason
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		utils.Logger.WithError(err).Warn("Failed to marshal reservation event payload")
		return
	}
	env := Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     p.producer,
		Payload:      raw,
	}
	value, err := json.Marshal(env)
	if err != nil {
		utils.Logger.WithError(err).Warn("Failed to marshal reservation event envelope")
		return
	}

	if err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   PartitionKey(payload.ReservationID),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		utils.Logger.WithError(err).Warn("Failed to enqueue reservation event")
	}
}

func (p *kafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher is used when no broker is configured (and in tests).
type NopPublisher struct{}

func (NopPublisher) PublishReservationEvent(context.Context, string, *models.Reservation) {}
func (NopPublisher) Close() error                                                         { return nil }
