package dto

import (
	bookingModel "syncguard/internal/domains/booking/model"
)

type ScanRequest struct {
	Image     string `json:"image"      validate:"required"`
	ImageBack string `json:"image_back" validate:"omitempty"`
}

type ScanResponse struct {
	Guest bookingModel.GuestDetails `json:"guest"`
}

type ParseEmailRequest struct {
	Subject string `json:"subject" validate:"omitempty,max=500"`
	Body    string `json:"body"    validate:"required"`
}

// BookingDraft is the pre-filled reservation a parsed OTA email produces.
// Nothing is persisted; the operator reviews and submits it as a booking.
type BookingDraft struct {
	GuestName     string  `json:"guest_name"`
	Source        string  `json:"source"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Amount        float64 `json:"amount"`
	ReservationID string  `json:"reservation_id"`
	NumberOfRooms int     `json:"number_of_rooms"`
	Pax           int     `json:"pax"`
	RoomTypeName  string  `json:"room_type_name"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
}

type ParseEmailResponse struct {
	Draft BookingDraft `json:"draft"`
}
