package service

import (
	"context"
	"fmt"
	"time"

	"syncguard/infras/pdf"
	"syncguard/internal/domains/booking/event"
	"syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/booking/model/dto"
	notifModel "syncguard/internal/domains/notification/model"
	notifService "syncguard/internal/domains/notification/service"
	rtModel "syncguard/internal/domains/roomtype/model"
	settingsModel "syncguard/internal/domains/settings/model"
	"syncguard/shared"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
	"syncguard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CheckAvailability(ctx context.Context, roomNumber, checkIn, checkOut, excludeID string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, parseErr := model.ParseStayDate(checkIn); parseErr != nil {
		return res, failure.BadRequestFromString("dates must be formatted YYYY-MM-DD") // nolint:wrapcheck
	}

	if _, parseErr := model.ParseStayDate(checkOut); parseErr != nil {
		return res, failure.BadRequestFromString("dates must be formatted YYYY-MM-DD") // nolint:wrapcheck
	}

	if checkOut <= checkIn {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	conflict, err := s.hasConflict(ctx, roomNumber, checkIn, checkOut, excludeID)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Available:  !conflict,
	}, nil
}

// Transfer moves a stay to another room. A transfer effective on the
// check-in date swaps the room in place; a mid-stay date splits the booking
// into two segments sharing a reservation ID.
func (s *serviceImpl) Transfer(ctx context.Context, id string, req dto.TransferRequest) (res dto.TransferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Transfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != constant.BookingStatusConfirmed && booking.Status != constant.BookingStatusCheckedIn {
		return res, failure.Conflict("only Confirmed or CheckedIn bookings can be transferred") // nolint:wrapcheck
	}

	if req.EffectiveDate < booking.CheckIn || req.EffectiveDate >= booking.CheckOut {
		return res, failure.BadRequestFromString("effective_date must fall within the stay") // nolint:wrapcheck
	}

	newRoomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.NewRoomTypeID, rtModel.FieldID, rtModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get target room type")

		return res, fmt.Errorf("failed to get target room type: %w", err)
	}

	if newRoomType.ID == constant.Empty {
		return res, failure.BadRequestFromString("target room type does not exist") // nolint:wrapcheck
	}

	conflict, err := s.hasConflict(ctx, req.NewRoomNumber, req.EffectiveDate, booking.CheckOut, booking.ID)
	if err != nil {
		return res, err
	}

	if conflict {
		return res, failure.Conflict(fmt.Sprintf("room %s is not available for the transfer window", req.NewRoomNumber)) // nolint:wrapcheck
	}

	if req.EffectiveDate == booking.CheckIn {
		return s.transferInPlace(ctx, booking, req, newRoomType, actor)
	}

	return s.transferSplit(ctx, booking, req, newRoomType, actor)
}

func (s *serviceImpl) transferInPlace(ctx context.Context, booking model.Booking, req dto.TransferRequest, newRoomType rtModel.RoomType, actor string) (res dto.TransferResponse, err error) {
	amount := booking.Amount
	if !req.KeepRate {
		amount = newRoomType.BasePrice * float64(booking.Nights())
	}

	updatedFields := map[string]any{
		model.FieldRoomTypeID:    req.NewRoomTypeID,
		model.FieldRoomNumber:    req.NewRoomNumber,
		model.FieldAmount:        amount,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to transfer booking")

		return res, fmt.Errorf("failed to transfer booking: %w", err)
	}

	booking.RoomTypeID = req.NewRoomTypeID
	booking.RoomNumber = req.NewRoomNumber
	booking.Amount = amount

	s.notifier.Emit(ctx, notifService.Event{
		Type:       notifModel.TypeStatusChange,
		Category:   notifModel.CategoryFrontDesk,
		Title:      "Room transfer",
		Message:    fmt.Sprintf("%s moved to room %s", booking.GuestName, req.NewRoomNumber),
		BookingID:  booking.ID,
		RoomNumber: req.NewRoomNumber,
	})

	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingUpdated, booking)

	s.invalidate(ctx, booking.ID)

	res.Booking.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) transferSplit(ctx context.Context, booking model.Booking, req dto.TransferRequest, newRoomType rtModel.RoomType, actor string) (res dto.TransferResponse, err error) {
	originalNights := booking.Nights()
	if originalNights < 1 {
		originalNights = 1
	}

	perNight := booking.Amount / float64(originalNights)
	firstNights := model.NightsBetween(booking.CheckIn, req.EffectiveDate)
	secondNights := model.NightsBetween(req.EffectiveDate, booking.CheckOut)

	reservationID := booking.ReservationID
	if reservationID == constant.Empty {
		reservationID = uuid.NewString()
	}

	secondAmount := newRoomType.BasePrice * float64(secondNights)
	if req.KeepRate {
		secondAmount = perNight * float64(secondNights)
	}

	now := timezone.Now()

	segment := model.Booking{
		ID:              uuid.NewString(),
		RoomTypeID:      req.NewRoomTypeID,
		RoomNumber:      req.NewRoomNumber,
		GuestName:       booking.GuestName,
		Source:          booking.Source,
		Status:          booking.Status,
		BookedAt:        now.UnixMilli(),
		CheckIn:         req.EffectiveDate,
		CheckOut:        booking.CheckOut,
		Amount:          secondAmount,
		ReservationID:   reservationID,
		Payments:        model.Payments{},
		GuestDetails:    booking.GuestDetails,
		GuestProfileID:  booking.GuestProfileID,
		NumberOfRooms:   booking.NumberOfRooms,
		Pax:             booking.Pax,
		AccessoryGuests: booking.AccessoryGuests,
		ExtraBeds:       booking.ExtraBeds,
		SpecialRequests: booking.SpecialRequests,
		IsVIP:           booking.IsVIP,
		ChannelSync:     booking.ChannelSync,
		Metadata:        booking.Metadata,
	}
	segment.CreatedAt = now
	segment.CreatedBy = actor
	segment.ModifiedAt = now
	segment.ModifiedBy = actor

	originalFolio := booking.Folio
	if req.TransferFolio {
		segment.Folio = booking.Folio
		originalFolio = model.FolioItems{}
	} else {
		segment.Folio = model.FolioItems{}
	}

	updatedFields := map[string]any{
		model.FieldCheckOut:      req.EffectiveDate,
		model.FieldAmount:        perNight * float64(firstNights),
		model.FieldReservationID: reservationID,
		model.FieldFolio:         originalFolio,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err = s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
		_ = tx.Rollback()

		log.Error().Err(err).Msg("failed to truncate original segment")

		return res, fmt.Errorf("failed to truncate original segment: %w", err)
	}

	if err = s.repo.InsertTx(ctx, tx, segment); err != nil {
		_ = tx.Rollback()

		log.Error().Err(err).Msg("failed to insert transfer segment")

		return res, fmt.Errorf("failed to insert transfer segment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transfer")

		return res, fmt.Errorf("failed to commit transfer: %w", err)
	}

	booking.CheckOut = req.EffectiveDate
	booking.Amount = perNight * float64(firstNights)
	booking.ReservationID = reservationID
	booking.Folio = originalFolio

	s.notifier.Emit(ctx, notifService.Event{
		Type:       notifModel.TypeStatusChange,
		Category:   notifModel.CategoryFrontDesk,
		Title:      "Room transfer",
		Message:    fmt.Sprintf("%s moves to room %s on %s", booking.GuestName, req.NewRoomNumber, req.EffectiveDate),
		BookingID:  booking.ID,
		RoomNumber: req.NewRoomNumber,
		Details:    notifModel.Details{"effective_date": req.EffectiveDate, "segment_id": segment.ID},
	})

	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingUpdated, booking)
	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingCreated, segment)

	s.invalidate(ctx, booking.ID)

	res.Booking.FromModel(booking)

	var segmentRes dto.BookingResponse

	segmentRes.FromModel(segment)
	res.NewSegment = &segmentRes

	return res, nil
}

// Checkout settles a stay: recompute billable nights against the configured
// cutoff, rescale the room amount when the night count changed, draw the
// next invoice number, settle unpaid folio lines, and render the documents.
// A document failure rolls the whole settlement back.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status == constant.BookingStatusCheckedOut || booking.IsSettled {
		return res, failure.Conflict("booking is already settled") // nolint:wrapcheck
	}

	settings, err := s.settings.GetModel(ctx)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	effectiveCheckOut := effectiveCheckOutDate(now, settings.CheckoutCutoff)

	originalNights := booking.Nights()
	if originalNights < constant.MinBillableNights {
		originalNights = constant.MinBillableNights
	}

	nights := model.NightsBetween(booking.CheckIn, effectiveCheckOut)
	if nights < constant.MinBillableNights {
		nights = constant.MinBillableNights

		if in, parseErr := model.ParseStayDate(booking.CheckIn); parseErr == nil {
			effectiveCheckOut = in.AddDate(0, 0, constant.MinBillableNights).Format(constant.StayDateFormat)
		}
	}

	amount := booking.Amount
	if nights != originalNights {
		amount = booking.Amount / float64(originalNights) * float64(nights)
	}

	folio := make(model.FolioItems, len(booking.Folio))
	copy(folio, booking.Folio)

	for i := range folio {
		if !folio[i].IsPaid {
			folio[i].IsPaid = true
			folio[i].PaymentMethod = constant.PaymentMethodSettled
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, err
	}

	sequence, err := s.settingsRepo.IncrementInvoiceCounterTx(ctx, tx)
	if err != nil {
		_ = tx.Rollback()

		log.Error().Err(err).Msg("failed to draw invoice number")

		return res, fmt.Errorf("failed to draw invoice number: %w", err)
	}

	invoiceNumber := fmt.Sprintf("%s-%d-%0*d", constant.InvoicePrefix, now.Year(), constant.InvoiceSequenceDigits, sequence)
	invoiceDate := now.Format(constant.StayDateFormat)

	updatedFields := map[string]any{
		model.FieldStatus:        constant.BookingStatusCheckedOut,
		model.FieldCheckOut:      effectiveCheckOut,
		model.FieldAmount:        amount,
		model.FieldFolio:         folio,
		model.FieldIsSettled:     true,
		model.FieldInvoiceNumber: invoiceNumber,
		"invoice_date":           invoiceDate,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err = s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
		_ = tx.Rollback()

		log.Error().Err(err).Msg("failed to settle booking")

		return res, fmt.Errorf("failed to settle booking: %w", err)
	}

	settled := booking
	settled.Status = constant.BookingStatusCheckedOut
	settled.CheckOut = effectiveCheckOut
	settled.Amount = amount
	settled.Folio = folio
	settled.IsSettled = true
	settled.InvoiceNumber = invoiceNumber
	settled.InvoiceDate = invoiceDate

	// Paid total is taken before the force-settle above so lines settled at
	// checkout do not count as money already received.
	invoicePath, receiptPath, err := s.renderDocuments(ctx, settled, settings, nights, booking.PaidTotal())
	if err != nil {
		_ = tx.Rollback()

		return res, err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit checkout")

		return res, fmt.Errorf("failed to commit checkout: %w", err)
	}

	s.notifier.Emit(ctx, notifService.Event{
		Type:       notifModel.TypeCheckout,
		Category:   notifModel.CategoryFrontDesk,
		Title:      "Guest checked out",
		Message:    fmt.Sprintf("%s settled room %s, invoice %s", settled.GuestName, settled.RoomNumber, invoiceNumber),
		BookingID:  settled.ID,
		RoomNumber: settled.RoomNumber,
		Details:    notifModel.Details{"invoice_number": invoiceNumber, "nights": fmt.Sprint(nights)},
	})

	go s.publisher.Publish(context.WithoutCancel(ctx), event.EventBookingCheckedOut, settled)

	s.invalidate(ctx, settled.ID)

	return dto.CheckoutResponse{
		BookingID:     settled.ID,
		InvoiceNumber: invoiceNumber,
		Nights:        nights,
		Amount:        amount,
		CheckOut:      effectiveCheckOut,
		InvoicePath:   invoicePath,
		ReceiptPath:   receiptPath,
	}, nil
}

func (s *serviceImpl) renderDocuments(ctx context.Context, booking model.Booking, settings settingsModel.PropertySettings, nights int, paid float64) (invoicePath, receiptPath string, err error) {
	property := pdf.Property{
		Name:      settings.HotelName,
		Address:   []string{settings.AddressLine1, settings.AddressLine2, settings.City + " " + settings.PinCode},
		Phone:     settings.Phone,
		Email:     settings.Email,
		GSTNumber: settings.GSTNumber,
	}

	items := []pdf.Line{{
		Description: fmt.Sprintf("Room charges (%d nights)", nights),
		Category:    constant.FolioCategoryRoom,
		Date:        booking.CheckIn,
		Amount:      booking.Amount,
	}}

	subtotal := booking.Amount

	for _, item := range booking.Folio {
		items = append(items, pdf.Line{
			Description: item.Description,
			Category:    item.Category,
			Date:        item.Timestamp,
			Amount:      item.Amount,
		})
		subtotal += item.Amount
	}

	gstAmount := subtotal * settings.GSTRatePercent / 100
	total := subtotal + gstAmount

	payments := make([]pdf.Line, 0, len(booking.Payments))

	for _, payment := range booking.Payments {
		if payment.Status != constant.PaymentStatusCompleted {
			continue
		}

		payments = append(payments, pdf.Line{
			Description: payment.Method,
			Date:        payment.Timestamp,
			Amount:      payment.Amount,
		})
	}

	guestPhone := constant.Empty
	if booking.GuestDetails != nil {
		guestPhone = booking.GuestDetails.PhoneNumber
	}

	invoiceData := pdf.InvoiceData{
		InvoiceNumber: booking.InvoiceNumber,
		InvoiceDate:   booking.InvoiceDate,
		Property:      property,
		GuestName:     booking.GuestName,
		GuestPhone:    guestPhone,
		RoomNumber:    booking.RoomNumber,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		Nights:        nights,
		Items:         items,
		Subtotal:      subtotal,
		GSTRate:       settings.GSTRatePercent,
		GSTAmount:     gstAmount,
		Total:         total,
		Payments:      payments,
		BalanceDue:    total - paid,
	}

	invoiceBytes, err := s.pdf.Invoice(ctx, invoiceData)
	if err != nil {
		log.Error().Err(err).Msg("failed to render invoice")

		return constant.Empty, constant.Empty, failure.Upstream("invoice renderer", err) // nolint:wrapcheck
	}

	invoicePath, err = s.storage.UploadFileBytes(ctx, constant.Empty, s.cfg.App.DocumentDir, booking.InvoiceNumber+".pdf", constant.ContentTypePDF, invoiceBytes)
	if err != nil {
		log.Error().Err(err).Msg("failed to store invoice")

		return constant.Empty, constant.Empty, failure.Upstream("document storage", err) // nolint:wrapcheck
	}

	if paid <= 0 {
		return invoicePath, constant.Empty, nil
	}

	receiptBytes, err := s.pdf.Receipt(ctx, pdf.ReceiptData{
		ReceiptNumber: booking.InvoiceNumber + "-R",
		Date:          booking.InvoiceDate,
		Property:      property,
		GuestName:     booking.GuestName,
		RoomNumber:    booking.RoomNumber,
		Method:        constant.PaymentMethodSettled,
		Amount:        paid,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render receipt")

		return constant.Empty, constant.Empty, failure.Upstream("receipt renderer", err) // nolint:wrapcheck
	}

	receiptPath, err = s.storage.UploadFileBytes(ctx, constant.Empty, s.cfg.App.DocumentDir, booking.InvoiceNumber+"-R.pdf", constant.ContentTypePDF, receiptBytes)
	if err != nil {
		log.Error().Err(err).Msg("failed to store receipt")

		return constant.Empty, constant.Empty, failure.Upstream("document storage", err) // nolint:wrapcheck
	}

	return invoicePath, receiptPath, nil
}

// effectiveCheckOutDate is today, pushed one day forward when the clock has
// passed the cutoff time.
func effectiveCheckOutDate(now time.Time, cutoff string) string {
	today := now.Format(constant.StayDateFormat)
	clock := now.Format(constant.CutoffFormat)

	if cutoff != constant.Empty && clock > cutoff {
		return now.AddDate(0, 0, 1).Format(constant.StayDateFormat)
	}

	return today
}
