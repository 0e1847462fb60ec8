package model

import (
	"syncguard/shared/constant"
	"syncguard/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomTypeID    = "room_type_id"
	FieldRoomNumber    = "room_number"
	FieldGuestName     = "guest_name"
	FieldSource        = "source"
	FieldStatus        = "status"
	FieldBookedAt      = "booked_at"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldAmount        = "amount"
	FieldReservationID = "reservation_id"
	FieldFolio         = "folio"
	FieldPayments      = "payments"
	FieldGuestDetails  = "guest_details"
	FieldProfileID     = "guest_profile_id"
	FieldIsSettled     = "is_settled"
	FieldInvoiceNumber = "invoice_number"
)

type Booking struct {
	ID              string        `db:"id"`
	RoomTypeID      string        `db:"room_type_id"`
	RoomNumber      string        `db:"room_number"`
	GuestName       string        `db:"guest_name"`
	Source          string        `db:"source"`
	Status          string        `db:"status"`
	BookedAt        int64         `db:"booked_at"`
	CheckIn         string        `db:"check_in"`
	CheckOut        string        `db:"check_out"`
	Amount          float64       `db:"amount"`
	ReservationID   string        `db:"reservation_id"`
	Folio           FolioItems    `db:"folio"`
	Payments        Payments      `db:"payments"`
	GuestDetails    *GuestDetails `db:"guest_details"`
	GuestProfileID  string        `db:"guest_profile_id"`
	NumberOfRooms   int           `db:"number_of_rooms"`
	Pax             int           `db:"pax"`
	AccessoryGuests GuestList     `db:"accessory_guests"`
	ExtraBeds       int           `db:"extra_beds"`
	SpecialRequests string        `db:"special_requests"`
	IsVIP           bool          `db:"is_vip"`
	RejectionReason string        `db:"rejection_reason"`
	ChannelSync     StringMap     `db:"channel_sync"`
	IsSettled       bool          `db:"is_settled"`
	InvoiceNumber   string        `db:"invoice_number"`
	InvoiceDate     string        `db:"invoice_date"`
	model.Metadata
}

// Nights returns the booked night count, zero when either date fails to
// parse or the interval is inverted.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// UnpaidFolioTotal sums folio lines not yet marked paid.
func (b *Booking) UnpaidFolioTotal() float64 {
	total := 0.0

	for _, item := range b.Folio {
		if !item.IsPaid {
			total += item.Amount
		}
	}

	return total
}

// PaidTotal sums recorded completed payments plus folio lines already paid.
func (b *Booking) PaidTotal() float64 {
	total := 0.0

	for _, payment := range b.Payments {
		if payment.Status == constant.PaymentStatusCompleted {
			total += payment.Amount
		}
	}

	for _, item := range b.Folio {
		if item.IsPaid {
			total += item.Amount
		}
	}

	return total
}
