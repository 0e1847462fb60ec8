package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"syncguard/config"
	"syncguard/infras/otel"
	"syncguard/infras/pdf"
	"syncguard/infras/s3"
	"syncguard/internal/domains/booking/event"
	"syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/booking/model/dto"
	"syncguard/internal/domains/booking/repository"
	guestService "syncguard/internal/domains/guest/service"
	notifModel "syncguard/internal/domains/notification/model"
	notifService "syncguard/internal/domains/notification/service"
	rtModel "syncguard/internal/domains/roomtype/model"
	rtRepo "syncguard/internal/domains/roomtype/repository"
	settingsRepo "syncguard/internal/domains/settings/repository"
	settingsService "syncguard/internal/domains/settings/service"
	"syncguard/shared"
	"syncguard/shared/cache"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/failure"
	"syncguard/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreateBulk(ctx context.Context, req dto.BulkCreateRequest) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	Transfer(ctx context.Context, id string, req dto.TransferRequest) (dto.TransferResponse, error)
	Checkout(ctx context.Context, id string) (dto.CheckoutResponse, error)
	CheckAvailability(ctx context.Context, roomNumber, checkIn, checkOut, excludeID string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomTypeRepo rtRepo.RoomType
	settingsRepo settingsRepo.Settings
	guests       guestService.Guest
	notifier     notifService.Notification
	settings     settingsService.Settings
	publisher    event.Publisher
	pdf          pdf.Generator
	storage      s3.S3
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomTypeRepo rtRepo.RoomType,
	settingsRepo settingsRepo.Settings,
	guests guestService.Guest,
	notifier notifService.Notification,
	settings settingsService.Settings,
	publisher event.Publisher,
	pdfGen pdf.Generator,
	storage s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		settingsRepo: settingsRepo,
		guests:       guests,
		notifier:     notifier,
		settings:     settings,
		publisher:    publisher,
		pdf:          pdfGen,
		storage:      storage,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create persists a booking without checking room availability. Direct
// front-desk entry trusts the operator; the bulk endpoint is the checked
// path.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if err = s.ensureRoomType(ctx, req.RoomTypeID); err != nil {
		return res, err
	}

	if req.CheckOut <= req.CheckIn {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	booking := req.ToModel(actor)
	s.syncGuest(ctx, &booking)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.notifier.Emit(ctx, notifService.Event{
		Type:       notifModel.TypeNewBooking,
		Category:   notifModel.CategoryReservations,
		Title:      "New reservation",
		Message:    fmt.Sprintf("%s booked %s, %s to %s", booking.GuestName, booking.RoomNumber, booking.CheckIn, booking.CheckOut),
		BookingID:  booking.ID,
		RoomNumber: booking.RoomNumber,
		Details:    notifModel.Details{"check_in": booking.CheckIn, "check_out": booking.CheckOut, "source": booking.Source},
	})

	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingCreated, booking)

	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

// CreateBulk inserts a batch atomically, rejecting the whole batch on the
// first room conflict. Rooms left "Unassigned" are never checked.
func (s *serviceImpl) CreateBulk(ctx context.Context, req dto.BulkCreateRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateBulk")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	bookings := make([]model.Booking, 0, len(req.Bookings))

	for i := range req.Bookings {
		item := &req.Bookings[i]

		if err = s.ensureRoomType(ctx, item.RoomTypeID); err != nil {
			return res, err
		}

		if item.CheckOut <= item.CheckIn {
			return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
		}

		booking := item.ToModel(actor)

		conflict, checkErr := s.hasConflict(ctx, booking.RoomNumber, booking.CheckIn, booking.CheckOut, constant.Empty)
		if checkErr != nil {
			return res, checkErr
		}

		if conflict {
			s.notifier.Emit(ctx, notifService.Event{
				Type:       notifModel.TypeBookingConflict,
				Category:   notifModel.CategoryReservations,
				Title:      "Booking conflict",
				Message:    fmt.Sprintf("room %s is not available %s to %s", booking.RoomNumber, booking.CheckIn, booking.CheckOut),
				Priority:   notifModel.PriorityHigh,
				RoomNumber: booking.RoomNumber,
			})

			return res, failure.Conflict(fmt.Sprintf("room %s is not available for %s to %s", booking.RoomNumber, booking.CheckIn, booking.CheckOut)) // nolint:wrapcheck
		}

		// Bulk rows also conflict among themselves.
		for _, accepted := range bookings {
			if booking.RoomNumber != constant.RoomUnassigned &&
				accepted.RoomNumber == booking.RoomNumber &&
				model.Overlaps(booking.CheckIn, booking.CheckOut, accepted.CheckIn, accepted.CheckOut) {
				return res, failure.Conflict(fmt.Sprintf("room %s is requested twice for overlapping dates", booking.RoomNumber)) // nolint:wrapcheck
			}
		}

		s.syncGuest(ctx, &booking)
		bookings = append(bookings, booking)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, err
	}

	if err = s.repo.InsertBulkTx(ctx, tx, bookings); err != nil {
		_ = tx.Rollback()

		log.Error().Err(err).Msg("failed to bulk insert bookings")

		return res, fmt.Errorf("failed to bulk insert bookings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit bulk insert")

		return res, fmt.Errorf("failed to commit bulk insert: %w", err)
	}

	for _, booking := range bookings {
		s.notifier.Emit(ctx, notifService.Event{
			Type:       notifModel.TypeNewBooking,
			Category:   notifModel.CategoryReservations,
			Title:      "New reservation",
			Message:    fmt.Sprintf("%s booked %s, %s to %s", booking.GuestName, booking.RoomNumber, booking.CheckIn, booking.CheckOut),
			BookingID:  booking.ID,
			RoomNumber: booking.RoomNumber,
			Details:    notifModel.Details{"check_in": booking.CheckIn, "check_out": booking.CheckOut, "source": booking.Source},
		})

		go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingCreated, booking)
	}

	if len(bookings) > 1 {
		s.notifier.Emit(ctx, notifService.Event{
			Type:     notifModel.TypeNewBooking,
			Category: notifModel.CategoryReservations,
			Title:    "Group booking",
			Message:  fmt.Sprintf("%d rooms booked under one batch", len(bookings)),
			Details:  notifModel.Details{"rooms": fmt.Sprint(len(bookings))},
		})
	}

	s.invalidateLists(ctx)

	res.FromModels(bookings, len(bookings), len(bookings))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update overwrites every mutable field of the booking. Folio growth and
// operator-relevant status changes each produce a notification.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	existing, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if req.CheckOut <= req.CheckIn {
		return failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	roomNumber := req.RoomNumber
	if roomNumber == constant.Empty {
		roomNumber = constant.RoomUnassigned
	}

	folio := req.FolioModels()
	payments := req.PaymentModels()

	updated := existing
	updated.RoomTypeID = req.RoomTypeID
	updated.RoomNumber = roomNumber
	updated.GuestName = req.GuestName
	updated.Source = req.Source
	updated.Status = req.Status
	updated.CheckIn = req.CheckIn
	updated.CheckOut = req.CheckOut
	updated.Amount = req.Amount
	updated.ReservationID = req.ReservationID
	updated.Folio = folio
	updated.Payments = payments
	updated.GuestDetails = req.GuestDetails
	updated.NumberOfRooms = req.NumberOfRooms
	updated.Pax = req.Pax
	updated.AccessoryGuests = model.GuestList(req.AccessoryGuests)
	updated.ExtraBeds = req.ExtraBeds
	updated.SpecialRequests = req.SpecialRequests
	updated.IsVIP = req.IsVIP
	updated.RejectionReason = req.RejectionReason
	updated.ChannelSync = model.StringMap(req.ChannelSync)

	if req.GuestDetails == nil {
		updated.GuestProfileID = constant.Empty
	} else {
		s.syncGuest(ctx, &updated)
	}

	updatedFields := map[string]any{
		model.FieldRoomTypeID:    updated.RoomTypeID,
		model.FieldRoomNumber:    updated.RoomNumber,
		model.FieldGuestName:     updated.GuestName,
		model.FieldSource:        updated.Source,
		model.FieldStatus:        updated.Status,
		model.FieldCheckIn:       updated.CheckIn,
		model.FieldCheckOut:      updated.CheckOut,
		model.FieldAmount:        updated.Amount,
		model.FieldReservationID: updated.ReservationID,
		model.FieldFolio:         updated.Folio,
		model.FieldPayments:      updated.Payments,
		model.FieldGuestDetails:  updated.GuestDetails,
		model.FieldProfileID:     updated.GuestProfileID,
		"number_of_rooms":        updated.NumberOfRooms,
		"pax":                    updated.Pax,
		"accessory_guests":       updated.AccessoryGuests,
		"extra_beds":             updated.ExtraBeds,
		"special_requests":       updated.SpecialRequests,
		"is_vip":                 updated.IsVIP,
		"rejection_reason":       updated.RejectionReason,
		"channel_sync":           updated.ChannelSync,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if len(folio) > len(existing.Folio) {
		newest := folio[len(folio)-1]
		s.notifier.Emit(ctx, notifService.Event{
			Type:       notifModel.TypeFolioCharge,
			Category:   notifModel.CategoryPayments,
			Title:      "Folio charge added",
			Message:    fmt.Sprintf("%s: %s (%.2f)", updated.GuestName, newest.Description, newest.Amount),
			Priority:   notifModel.PriorityLow,
			BookingID:  id,
			RoomNumber: updated.RoomNumber,
			Details:    notifModel.Details{"category": newest.Category, "amount": fmt.Sprintf("%.2f", newest.Amount)},
		})
	}

	if req.Status != existing.Status {
		switch req.Status {
		case constant.BookingStatusCheckedIn, constant.BookingStatusCheckedOut, constant.BookingStatusCancelled:
			s.notifier.Emit(ctx, notifService.Event{
				Type:       notifModel.TypeStatusChange,
				Category:   notifModel.CategoryFrontDesk,
				Title:      "Booking " + req.Status,
				Message:    fmt.Sprintf("%s in room %s is now %s", updated.GuestName, updated.RoomNumber, req.Status),
				BookingID:  id,
				RoomNumber: updated.RoomNumber,
				Details:    notifModel.Details{"from": existing.Status, "to": req.Status},
			})
		}
	}

	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingUpdated, updated)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) ensureRoomType(ctx context.Context, roomTypeID string) error {
	exists, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(roomTypeID, rtModel.FieldID, rtModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
	}

	return nil
}

// syncGuest resolves the guest profile for the booking. A registry failure
// is logged and the booking proceeds without a profile link.
func (s *serviceImpl) syncGuest(ctx context.Context, booking *model.Booking) {
	if !booking.GuestDetails.HasIdentity() {
		return
	}

	profileID, err := s.guests.Sync(ctx, booking.GuestDetails, booking.CheckIn)
	if err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("guest profile sync failed")

		return
	}

	booking.GuestProfileID = profileID
	booking.GuestDetails.ProfileID = profileID
}

func (s *serviceImpl) hasConflict(ctx context.Context, roomNumber, checkIn, checkOut, excludeID string) (bool, error) {
	if roomNumber == constant.RoomUnassigned || roomNumber == constant.Empty {
		return false, nil
	}

	active, err := s.repo.GetActiveByRoom(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to load active bookings for room")

		return false, fmt.Errorf("failed to load active bookings for room: %w", err)
	}

	for _, existing := range active {
		if existing.ID == excludeID {
			continue
		}

		if model.Overlaps(checkIn, checkOut, existing.CheckIn, existing.CheckOut) {
			return true, nil
		}
	}

	return false, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
