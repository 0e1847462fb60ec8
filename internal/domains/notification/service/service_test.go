package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/infras/otel/mocks"
	notifMocks "syncguard/internal/domains/notification/mocks"
	"syncguard/internal/domains/notification/model"
	"syncguard/internal/domains/notification/service"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

func TestNotificationService_Emit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notifMocks.NewMockNotification(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")

	t.Run("persists the event", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification model.Notification) error {
				assert.NotEmpty(t, notification.ID)
				assert.Equal(t, model.TypeNewBooking, notification.Type)
				assert.Equal(t, model.CategoryReservations, notification.Category)
				assert.Equal(t, model.PriorityHigh, notification.Priority)
				assert.Equal(t, "101", notification.RoomNumber)
				assert.Equal(t, "2025-03-10", notification.Details["check_in"])
				assert.Equal(t, "front-desk", notification.CreatedBy)

				return nil
			})

		svc.Emit(ctx, service.Event{
			Type:       model.TypeNewBooking,
			Category:   model.CategoryReservations,
			Title:      "New reservation",
			Message:    "Asha Rao booked 101",
			Priority:   model.PriorityHigh,
			BookingID:  "bk-1",
			RoomNumber: "101",
			Details:    model.Details{"check_in": "2025-03-10"},
		})
	})

	t.Run("category and priority default when omitted", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification model.Notification) error {
				assert.Equal(t, model.CategorySystem, notification.Category)
				assert.Equal(t, model.PriorityNormal, notification.Priority)

				return nil
			})

		svc.Emit(ctx, service.Event{
			Type:  model.TypeStatusChange,
			Title: "Booking CheckedIn",
		})
	})

	t.Run("insert failure is swallowed", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		svc.Emit(ctx, service.Event{
			Type:  model.TypeCheckout,
			Title: "Guest checked out",
		})
	})
}

func TestNotificationService_Flags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notifMocks.NewMockNotification(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")

	t.Run("mark read sets the read flag", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldIsRead])

				return nil
			})

		assert.NoError(t, svc.MarkRead(ctx, "n-1"))
	})

	t.Run("dismiss sets the dismissed flag", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldDismissed])

				return nil
			})

		assert.NoError(t, svc.Dismiss(ctx, "n-1"))
	})

	t.Run("missing notification", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.MarkRead(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("mark all read", func(t *testing.T) {
		mockRepo.EXPECT().
			MarkAllRead(gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.MarkAllRead(ctx))
	})
}
