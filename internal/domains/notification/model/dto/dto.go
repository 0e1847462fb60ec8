package dto

import (
	"syncguard/internal/domains/notification/model"
	"syncguard/shared"
	gDto "syncguard/shared/dto"
)

type NotificationResponse struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Category   string        `json:"category"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Priority   string        `json:"priority"`
	BookingID  string        `json:"booking_id,omitempty"`
	RoomNumber string        `json:"room_number,omitempty"`
	Details    model.Details `json:"metadata,omitempty"`
	IsRead     bool          `json:"is_read"`
	Dismissed  bool          `json:"dismissed"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(mod model.Notification) {
	r.ID = mod.ID
	r.Type = mod.Type
	r.Category = mod.Category
	r.Title = mod.Title
	r.Message = mod.Message
	r.Priority = mod.Priority
	r.BookingID = mod.BookingID
	r.RoomNumber = mod.RoomNumber
	r.Details = mod.Details
	r.IsRead = mod.IsRead
	r.Dismissed = mod.Dismissed
	r.Metadata.FromModel(mod.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
