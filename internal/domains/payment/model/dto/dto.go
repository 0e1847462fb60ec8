package dto

import (
	"syncguard/infras/gateway"
)

type CreateOrderRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
}

type CreateOrderResponse struct {
	Order gateway.Order `json:"order"`
}

// VerifyRequest carries the provider callback triple plus the folio lines
// the payment covers.
type VerifyRequest struct {
	BookingID    string   `json:"booking_id"     validate:"required"`
	OrderID      string   `json:"order_id"       validate:"required"`
	PaymentID    string   `json:"payment_id"     validate:"required"`
	Signature    string   `json:"signature"      validate:"required"`
	Amount       float64  `json:"amount"         validate:"required,gt=0"`
	Method       string   `json:"method"         validate:"omitempty,oneof=Cash UPI Card"`
	Description  string   `json:"description"    validate:"omitempty,max=200"`
	FolioItemIDs []string `json:"folio_item_ids" validate:"omitempty"`
}

type VerifyResponse struct {
	BookingID    string  `json:"booking_id"`
	PaymentID    string  `json:"payment_id"`
	Amount       float64 `json:"amount"`
	ItemsSettled int     `json:"items_settled"`
}
