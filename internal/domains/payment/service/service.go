package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"syncguard/infras/gateway"
	"syncguard/infras/otel"
	bookingModel "syncguard/internal/domains/booking/model"
	bookingRepo "syncguard/internal/domains/booking/repository"
	notifModel "syncguard/internal/domains/notification/model"
	notifService "syncguard/internal/domains/notification/service"
	"syncguard/internal/domains/payment/model/dto"
	"syncguard/shared"
	"syncguard/shared/cache"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
	"syncguard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
}

type serviceImpl struct {
	gateway  gateway.Gateway
	bookings bookingRepo.Booking
	notifier notifService.Notification
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(gw gateway.Gateway, bookings bookingRepo.Booking, notifier notifService.Notification, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		gateway:  gw,
		bookings: bookings,
		notifier: notifier,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	order, err := s.gateway.CreateOrder(ctx, req.Amount, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to create gateway order")

		return res, err
	}

	return dto.CreateOrderResponse{Order: order}, nil
}

// Verify validates the provider callback signature and, only on success,
// appends the payment and settles the referenced folio lines in a single
// update. A bad signature changes nothing.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return res, failure.BadRequestFromString("payment signature verification failed") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	method := req.Method
	if method == constant.Empty {
		method = constant.PaymentMethodUPI
	}

	paymentID := uuid.NewString()
	now := timezone.Now()

	payment := bookingModel.Payment{
		ID:          paymentID,
		Amount:      req.Amount,
		Method:      method,
		Timestamp:   now.Format(constant.DateFormat),
		Category:    "Folio",
		Description: req.Description,
		Status:      constant.PaymentStatusCompleted,
		GatewayRef:  req.PaymentID,
	}

	payments := append(bookingModel.Payments{}, booking.Payments...)
	payments = append(payments, payment)

	wanted := make(map[string]bool, len(req.FolioItemIDs))
	for _, id := range req.FolioItemIDs {
		wanted[id] = true
	}

	folio := make(bookingModel.FolioItems, len(booking.Folio))
	copy(folio, booking.Folio)

	settled := 0

	for i := range folio {
		if wanted[folio[i].ID] && !folio[i].IsPaid {
			folio[i].IsPaid = true
			folio[i].PaymentMethod = method
			folio[i].PaymentID = paymentID
			settled++
		}
	}

	updatedFields := map[string]any{
		bookingModel.FieldPayments: payments,
		bookingModel.FieldFolio:    folio,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   actor,
	}

	filter := shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)
	if err = s.bookings.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to record verified payment")

		return res, fmt.Errorf("failed to record verified payment: %w", err)
	}

	s.notifier.Emit(ctx, notifService.Event{
		Type:       notifModel.TypePayment,
		Category:   notifModel.CategoryPayments,
		Title:      "Payment received",
		Message:    fmt.Sprintf("%.2f received for %s via %s", req.Amount, booking.GuestName, method),
		BookingID:  booking.ID,
		RoomNumber: booking.RoomNumber,
		Details:    notifModel.Details{"amount": fmt.Sprintf("%.2f", req.Amount), "method": method, "gateway_ref": req.PaymentID},
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Delete(c, shared.BuildCacheKey("booking:get", booking.ID)); cacheErr != nil {
			log.Error().Err(cacheErr).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, "booking:gets")
	}()

	return dto.VerifyResponse{
		BookingID:    booking.ID,
		PaymentID:    paymentID,
		Amount:       req.Amount,
		ItemsSettled: settled,
	}, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}
