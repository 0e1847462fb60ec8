package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"

	"syncguard/config"
	"syncguard/infras/kafka"
	"syncguard/infras/otel"
	"syncguard/internal/domains/booking/model"
	"syncguard/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated    = "booking.created"
	EventBookingUpdated    = "booking.updated"
	EventBookingCheckedOut = "booking.checked_out"
)

// BookingEvent is the lifecycle payload pushed to the broker for channel
// managers and downstream consumers.
type BookingEvent struct {
	Event         string  `json:"event"`
	BookingID     string  `json:"booking_id"`
	ReservationID string  `json:"reservation_id,omitempty"`
	RoomTypeID    string  `json:"room_type_id"`
	RoomNumber    string  `json:"room_number"`
	Source        string  `json:"source"`
	Status        string  `json:"status"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Amount        float64 `json:"amount"`
	OccurredAt    int64   `json:"occurred_at"`
}

// Publisher pushes booking lifecycle events. Delivery is best effort; a
// broker failure is logged and never surfaces to the caller.
type Publisher interface {
	Publish(ctx context.Context, event string, booking model.Booking)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event string, booking model.Booking) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
	defer scope.End()

	message := kafka.Message{
		Key: booking.ID,
		Value: BookingEvent{
			Event:         event,
			BookingID:     booking.ID,
			ReservationID: booking.ReservationID,
			RoomTypeID:    booking.RoomTypeID,
			RoomNumber:    booking.RoomNumber,
			Source:        booking.Source,
			Status:        booking.Status,
			CheckIn:       booking.CheckIn,
			CheckOut:      booking.CheckOut,
			Amount:        booking.Amount,
			OccurredAt:    booking.ModifiedAt.UnixMilli(),
		},
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("event", event).Str("bookingID", booking.ID).Msg("failed to publish booking event")
	}
}
