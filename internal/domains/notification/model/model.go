package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"syncguard/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldType      = "type"
	FieldCategory  = "category"
	FieldPriority  = "priority"
	FieldBookingID = "booking_id"
	FieldIsRead    = "is_read"
	FieldDismissed = "dismissed"
)

// Notification event types.
const (
	TypeNewBooking      = "new_booking"
	TypeBookingConflict = "booking_conflict"
	TypeStatusChange    = "status_change"
	TypeFolioCharge     = "folio_charge"
	TypeCheckout        = "checkout"
	TypePayment         = "payment"
)

// Categories group events under the feed's filter tabs.
const (
	CategoryReservations = "reservations"
	CategoryFrontDesk    = "check_in_out"
	CategoryPayments     = "payments"
	CategorySystem       = "system"
)

const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

type Notification struct {
	ID         string  `db:"id"`
	Type       string  `db:"type"`
	Category   string  `db:"category"`
	Title      string  `db:"title"`
	Message    string  `db:"message"`
	Priority   string  `db:"priority"`
	BookingID  string  `db:"booking_id"`
	RoomNumber string  `db:"room_number"`
	Details    Details `db:"metadata"`
	IsRead     bool    `db:"is_read"`
	Dismissed  bool    `db:"dismissed"`
	model.Metadata
}

// Details is free-form context attached to an event, stored as JSONB.
type Details map[string]string

func (d Details) Value() (driver.Value, error) {
	if d == nil {
		d = Details{}
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal column value: %w", err)
	}

	return data, nil
}

func (d *Details) Scan(src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported column source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, d); err != nil {
		return fmt.Errorf("failed to unmarshal column value: %w", err)
	}

	return nil
}
