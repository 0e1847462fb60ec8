package dto

import (
	"time"

	"syncguard/internal/domains/ota/model"
	"syncguard/shared"
	gDto "syncguard/shared/dto"
	sharedModel "syncguard/shared/model"

	"github.com/google/uuid"
)

type CreateOTAConnectionRequest struct {
	Name        string  `json:"name"         validate:"required,max=100"`
	Key         string  `json:"key"          validate:"required,max=200"`
	Category    string  `json:"category"     validate:"omitempty,max=50"`
	MarkupType  string  `json:"markup_type"  validate:"omitempty,oneof=percent flat"`
	MarkupValue float64 `json:"markup_value" validate:"omitempty,gte=0"`
	IsVisible   bool    `json:"is_visible"`
}

func (r CreateOTAConnectionRequest) ToModel(actor string) model.OTAConnection {
	now := time.Now()

	return model.OTAConnection{
		ID:            uuid.NewString(),
		Name:          r.Name,
		Key:           r.Key,
		Category:      r.Category,
		Status:        model.StatusConnected,
		LastValidated: now.UnixMilli(),
		MarkupType:    r.MarkupType,
		MarkupValue:   r.MarkupValue,
		IsVisible:     r.IsVisible,
		Metadata: sharedModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  actor,
			ModifiedAt: now,
			ModifiedBy: actor,
		},
	}
}

type UpdateOTAConnectionRequest struct {
	Name        string  `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Key         string  `db:"key"          json:"key"          validate:"omitempty,max=200"`
	Category    string  `db:"category"     json:"category"     validate:"omitempty,max=50"`
	Status      string  `db:"status"       json:"status"       validate:"omitempty,oneof=connected disconnected error"`
	MarkupType  string  `db:"markup_type"  json:"markup_type"  validate:"omitempty,oneof=percent flat"`
	MarkupValue float64 `db:"markup_value" json:"markup_value" validate:"omitempty,gte=0"`
}

type OTAConnectionResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Key           string  `json:"key"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	LastValidated int64   `json:"last_validated"`
	MarkupType    string  `json:"markup_type"`
	MarkupValue   float64 `json:"markup_value"`
	IsVisible     bool    `json:"is_visible"`
	IsStopped     bool    `json:"is_stopped"`
	gDto.Metadata
}

func (r *OTAConnectionResponse) FromModel(mod model.OTAConnection) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Key = mod.Key
	r.Category = mod.Category
	r.Status = mod.Status
	r.LastValidated = mod.LastValidated
	r.MarkupType = mod.MarkupType
	r.MarkupValue = mod.MarkupValue
	r.IsVisible = mod.IsVisible
	r.IsStopped = mod.IsStopped
	r.Metadata.FromModel(mod.Metadata)
}

type GetOTAConnectionsResponse struct {
	Connections []OTAConnectionResponse `json:"connections"`
	TotalPage   int                     `json:"total_page"`
	TotalData   int                     `json:"total_data"`
}

func (r *GetOTAConnectionsResponse) FromModels(models []model.OTAConnection, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Connections = make([]OTAConnectionResponse, len(models))
	for i, mod := range models {
		r.Connections[i].FromModel(mod)
	}
}
