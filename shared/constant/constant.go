package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyActor     contextKey = "actor"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	StayDateFormat = "2006-01-02"
	CutoffFormat   = "15:04"
)

// Booking statuses. Confirmed -> {CheckedIn, Cancelled, Rejected},
// CheckedIn -> CheckedOut; Cancelled/Rejected are absorbing.
const (
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "CheckedIn"
	BookingStatusCheckedOut = "CheckedOut"
	BookingStatusCancelled  = "Cancelled"
	BookingStatusRejected   = "Rejected"
)

// Booking source channels. Unrecognized sources are treated as direct.
const (
	SourceDirect  = "Direct"
	SourceMMT     = "MMT"
	SourceBooking = "Booking.com"
	SourceExpedia = "Expedia"
)

// RoomUnassigned marks bookings awaiting manual room assignment. Such
// bookings never participate in availability conflicts.
const RoomUnassigned = "Unassigned"

const (
	FolioCategoryRoom    = "Room"
	FolioCategoryFnB     = "F&B"
	FolioCategoryLaundry = "Laundry"
	FolioCategoryOther   = "Other"
)

const (
	PaymentMethodCash    = "Cash"
	PaymentMethodUPI     = "UPI"
	PaymentMethodCard    = "Card"
	PaymentMethodSettled = "Settled"

	PaymentStatusCompleted = "Completed"
	PaymentStatusRefunded  = "Refunded"
	PaymentStatusCancelled = "Cancelled"
)

const (
	InvoicePrefix         = "INV"
	InvoiceSequenceDigits = 4
)

const (
	SettingsDefaultID       = "default"
	DefaultCheckoutCutoff   = "11:00"
	DefaultGSTRatePercent   = 12.0
	RateRulesDefaultID      = "default"
	MinBillableNights       = 1
	DefaultCheckInTime      = "12:00"
	CurrencyMinorUnitFactor = 100
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelPDFScopeName      = "pdf"
	OtelGatewayScopeName  = "gateway"
	OtelVLMScopeName      = "vlm"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderOperator           = "X-Operator"
)

// ActorSystem stamps audit columns when no operator header is present.
const ActorSystem = "system"

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	ContentTypePDF               = "application/pdf"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
