package dto

import (
	"syncguard/internal/domains/booking/model"
	"syncguard/shared"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	gModel "syncguard/shared/model"
	"syncguard/shared/timezone"

	"github.com/google/uuid"
)

type FolioItemPayload struct {
	ID            string  `json:"id"             validate:"omitempty"`
	Description   string  `json:"description"    validate:"required,max=200"`
	Amount        float64 `json:"amount"         validate:"gte=0"`
	Category      string  `json:"category"       validate:"required,oneof=Room F&B Laundry Other"`
	Timestamp     string  `json:"timestamp"      validate:"omitempty"`
	IsPaid        bool    `json:"is_paid"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty"`
	PaymentID     string  `json:"payment_id"     validate:"omitempty"`
}

func (p FolioItemPayload) toModel() model.FolioItem {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	ts := p.Timestamp
	if ts == "" {
		ts = timezone.Now().Format(constant.DateFormat)
	}

	return model.FolioItem{
		ID:            id,
		Description:   p.Description,
		Amount:        p.Amount,
		Category:      p.Category,
		Timestamp:     ts,
		IsPaid:        p.IsPaid,
		PaymentMethod: p.PaymentMethod,
		PaymentID:     p.PaymentID,
	}
}

type PaymentPayload struct {
	ID          string  `json:"id"          validate:"omitempty"`
	Amount      float64 `json:"amount"      validate:"gte=0"`
	Method      string  `json:"method"      validate:"required,oneof=Cash UPI Card Settled"`
	Timestamp   string  `json:"timestamp"   validate:"omitempty"`
	Category    string  `json:"category"    validate:"required,oneof=Room Folio Extra Partial"`
	Description string  `json:"description" validate:"omitempty,max=200"`
	Status      string  `json:"status"      validate:"required,oneof=Completed Refunded Cancelled"`
	GatewayRef  string  `json:"gateway_ref" validate:"omitempty"`
}

func (p PaymentPayload) toModel() model.Payment {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	ts := p.Timestamp
	if ts == "" {
		ts = timezone.Now().Format(constant.DateFormat)
	}

	return model.Payment{
		ID:          id,
		Amount:      p.Amount,
		Method:      p.Method,
		Timestamp:   ts,
		Category:    p.Category,
		Description: p.Description,
		Status:      p.Status,
		GatewayRef:  p.GatewayRef,
	}
}

type CreateBookingRequest struct {
	RoomTypeID      string               `json:"room_type_id"     validate:"required"`
	RoomNumber      string               `json:"room_number"      validate:"omitempty,max=20"`
	GuestName       string               `json:"guest_name"       validate:"required,max=100"`
	Source          string               `json:"source"           validate:"omitempty,oneof=Direct MMT Booking.com Expedia"`
	Status          string               `json:"status"           validate:"omitempty,oneof=Confirmed CheckedIn CheckedOut Cancelled Rejected"`
	CheckIn         string               `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string               `json:"check_out"        validate:"required,datetime=2006-01-02"`
	Amount          float64              `json:"amount"           validate:"gte=0"`
	ReservationID   string               `json:"reservation_id"   validate:"omitempty"`
	Folio           []FolioItemPayload   `json:"folio"            validate:"omitempty,dive"`
	Payments        []PaymentPayload     `json:"payments"         validate:"omitempty,dive"`
	GuestDetails    *model.GuestDetails  `json:"guest_details"    validate:"omitempty"`
	NumberOfRooms   int                  `json:"number_of_rooms"  validate:"omitempty,gte=1"`
	Pax             int                  `json:"pax"              validate:"omitempty,gte=1"`
	AccessoryGuests []model.GuestDetails `json:"accessory_guests" validate:"omitempty"`
	ExtraBeds       int                  `json:"extra_beds"       validate:"omitempty,gte=0"`
	SpecialRequests string               `json:"special_requests" validate:"omitempty,max=500"`
	IsVIP           bool                 `json:"is_vip"`
	ChannelSync     map[string]string    `json:"channel_sync"     validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	source := c.Source
	if source == "" {
		source = constant.SourceDirect
	}

	status := c.Status
	if status == "" {
		status = constant.BookingStatusConfirmed
	}

	roomNumber := c.RoomNumber
	if roomNumber == "" {
		roomNumber = constant.RoomUnassigned
	}

	folio := make(model.FolioItems, len(c.Folio))
	for i, item := range c.Folio {
		folio[i] = item.toModel()
	}

	payments := make(model.Payments, len(c.Payments))
	for i, payment := range c.Payments {
		payments[i] = payment.toModel()
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomTypeID:      c.RoomTypeID,
		RoomNumber:      roomNumber,
		GuestName:       c.GuestName,
		Source:          source,
		Status:          status,
		BookedAt:        timezone.Now().UnixMilli(),
		CheckIn:         c.CheckIn,
		CheckOut:        c.CheckOut,
		Amount:          c.Amount,
		ReservationID:   c.ReservationID,
		Folio:           folio,
		Payments:        payments,
		GuestDetails:    c.GuestDetails,
		NumberOfRooms:   c.NumberOfRooms,
		Pax:             c.Pax,
		AccessoryGuests: model.GuestList(c.AccessoryGuests),
		ExtraBeds:       c.ExtraBeds,
		SpecialRequests: c.SpecialRequests,
		IsVIP:           c.IsVIP,
		ChannelSync:     model.StringMap(c.ChannelSync),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BulkCreateRequest struct {
	Bookings []CreateBookingRequest `json:"bookings" validate:"required,min=1,dive"`
}

// UpdateBookingRequest overwrites every mutable field of the booking; there
// is deliberately no partial-update path here.
type UpdateBookingRequest struct {
	RoomTypeID      string               `json:"room_type_id"     validate:"required"`
	RoomNumber      string               `json:"room_number"      validate:"omitempty,max=20"`
	GuestName       string               `json:"guest_name"       validate:"required,max=100"`
	Source          string               `json:"source"           validate:"omitempty,oneof=Direct MMT Booking.com Expedia"`
	Status          string               `json:"status"           validate:"required,oneof=Confirmed CheckedIn CheckedOut Cancelled Rejected"`
	CheckIn         string               `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string               `json:"check_out"        validate:"required,datetime=2006-01-02"`
	Amount          float64              `json:"amount"           validate:"gte=0"`
	ReservationID   string               `json:"reservation_id"   validate:"omitempty"`
	Folio           []FolioItemPayload   `json:"folio"            validate:"omitempty,dive"`
	Payments        []PaymentPayload     `json:"payments"         validate:"omitempty,dive"`
	GuestDetails    *model.GuestDetails  `json:"guest_details"    validate:"omitempty"`
	NumberOfRooms   int                  `json:"number_of_rooms"  validate:"omitempty,gte=1"`
	Pax             int                  `json:"pax"              validate:"omitempty,gte=1"`
	AccessoryGuests []model.GuestDetails `json:"accessory_guests" validate:"omitempty"`
	ExtraBeds       int                  `json:"extra_beds"       validate:"omitempty,gte=0"`
	SpecialRequests string               `json:"special_requests" validate:"omitempty,max=500"`
	IsVIP           bool                 `json:"is_vip"`
	RejectionReason string               `json:"rejection_reason" validate:"omitempty,max=500"`
	ChannelSync     map[string]string    `json:"channel_sync"     validate:"omitempty"`
}

func (u *UpdateBookingRequest) FolioModels() model.FolioItems {
	folio := make(model.FolioItems, len(u.Folio))
	for i, item := range u.Folio {
		folio[i] = item.toModel()
	}

	return folio
}

func (u *UpdateBookingRequest) PaymentModels() model.Payments {
	payments := make(model.Payments, len(u.Payments))
	for i, payment := range u.Payments {
		payments[i] = payment.toModel()
	}

	return payments
}

type TransferRequest struct {
	NewRoomTypeID string `json:"new_room_type_id" validate:"required"`
	NewRoomNumber string `json:"new_room_number"  validate:"required,max=20"`
	EffectiveDate string `json:"effective_date"   validate:"required,datetime=2006-01-02"`
	KeepRate      bool   `json:"keep_rate"`
	TransferFolio bool   `json:"transfer_folio"`
}

type TransferResponse struct {
	Booking    BookingResponse  `json:"booking"`
	NewSegment *BookingResponse `json:"new_segment,omitempty"`
}

type CheckoutResponse struct {
	BookingID     string  `json:"booking_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Nights        int     `json:"nights"`
	Amount        float64 `json:"amount"`
	CheckOut      string  `json:"check_out"`
	InvoicePath   string  `json:"invoice_path"`
	ReceiptPath   string  `json:"receipt_path,omitempty"`
}

type AvailabilityResponse struct {
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Available  bool   `json:"available"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	RoomTypeID      string               `json:"room_type_id"`
	RoomNumber      string               `json:"room_number"`
	GuestName       string               `json:"guest_name"`
	Source          string               `json:"source"`
	Status          string               `json:"status"`
	BookedAt        int64                `json:"booked_at"`
	CheckIn         string               `json:"check_in"`
	CheckOut        string               `json:"check_out"`
	Amount          float64              `json:"amount"`
	ReservationID   string               `json:"reservation_id,omitempty"`
	Folio           []model.FolioItem    `json:"folio"`
	Payments        []model.Payment      `json:"payments"`
	GuestDetails    *model.GuestDetails  `json:"guest_details,omitempty"`
	GuestProfileID  string               `json:"guest_profile_id,omitempty"`
	NumberOfRooms   int                  `json:"number_of_rooms,omitempty"`
	Pax             int                  `json:"pax,omitempty"`
	AccessoryGuests []model.GuestDetails `json:"accessory_guests,omitempty"`
	ExtraBeds       int                  `json:"extra_beds,omitempty"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	IsVIP           bool                 `json:"is_vip"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	ChannelSync     map[string]string    `json:"channel_sync,omitempty"`
	IsSettled       bool                 `json:"is_settled"`
	InvoiceNumber   string               `json:"invoice_number,omitempty"`
	InvoiceDate     string               `json:"invoice_date,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.RoomTypeID = mod.RoomTypeID
	r.RoomNumber = mod.RoomNumber
	r.GuestName = mod.GuestName
	r.Source = mod.Source
	r.Status = mod.Status
	r.BookedAt = mod.BookedAt
	r.CheckIn = mod.CheckIn
	r.CheckOut = mod.CheckOut
	r.Amount = mod.Amount
	r.ReservationID = mod.ReservationID
	r.Folio = mod.Folio
	r.Payments = mod.Payments
	r.GuestDetails = mod.GuestDetails
	r.GuestProfileID = mod.GuestProfileID
	r.NumberOfRooms = mod.NumberOfRooms
	r.Pax = mod.Pax
	r.AccessoryGuests = mod.AccessoryGuests
	r.ExtraBeds = mod.ExtraBeds
	r.SpecialRequests = mod.SpecialRequests
	r.IsVIP = mod.IsVIP
	r.RejectionReason = mod.RejectionReason
	r.ChannelSync = mod.ChannelSync
	r.IsSettled = mod.IsSettled
	r.InvoiceNumber = mod.InvoiceNumber
	r.InvoiceDate = mod.InvoiceDate
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
