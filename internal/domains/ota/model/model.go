package model

import (
	"syncguard/shared/model"
)

const (
	TableName  = "ota_connections"
	EntityName = "ota connection"

	FieldID     = "id"
	FieldName   = "name"
	FieldStatus = "status"
)

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusError        = "error"

	MarkupTypePercent = "percent"
	MarkupTypeFlat    = "flat"
)

// OTAConnection is a configured channel-manager link. Key is the channel
// credential; Markup* adjusts pushed rates relative to the base price.
type OTAConnection struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Key           string  `db:"key"`
	Category      string  `db:"category"`
	Status        string  `db:"status"`
	LastValidated int64   `db:"last_validated"`
	MarkupType    string  `db:"markup_type"`
	MarkupValue   float64 `db:"markup_value"`
	IsVisible     bool    `db:"is_visible"`
	IsStopped     bool    `db:"is_stopped"`
	model.Metadata
}
