package dto

import (
	"time"

	"syncguard/internal/domains/hotel/model"
	"syncguard/shared"
	gDto "syncguard/shared/dto"
	sharedModel "syncguard/shared/model"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name      string          `json:"name"       validate:"required,max=150"`
	Location  string          `json:"location"   validate:"omitempty,max=200"`
	Color     string          `json:"color"      validate:"omitempty,hexcolor"`
	OTAConfig model.OTAConfig `json:"ota_config"`
}

func (r CreateHotelRequest) ToModel(actor string) model.Hotel {
	now := time.Now()

	return model.Hotel{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Location:  r.Location,
		Color:     r.Color,
		OTAConfig: r.OTAConfig,
		Metadata: sharedModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  actor,
			ModifiedAt: now,
			ModifiedBy: actor,
		},
	}
}

type UpdateHotelRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=150"`
	Location string `db:"location" json:"location" validate:"omitempty,max=200"`
	Color    string `db:"color"    json:"color"    validate:"omitempty,hexcolor"`
}

type HotelResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Color     string          `json:"color"`
	OTAConfig model.OTAConfig `json:"ota_config"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Location = mod.Location
	r.Color = mod.Color
	r.OTAConfig = mod.OTAConfig
	r.Metadata.FromModel(mod.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
