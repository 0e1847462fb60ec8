package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/config"
	"syncguard/infras/otel/mocks"
	bookingMocks "syncguard/internal/domains/booking/mocks"
	rtMocks "syncguard/internal/domains/roomtype/mocks"
	"syncguard/internal/domains/roomtype/model"
	"syncguard/internal/domains/roomtype/model/dto"
	"syncguard/internal/domains/roomtype/service"
	cacheMocks "syncguard/shared/cache/mocks"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *rtMocks.MockRoomType, *bookingMocks.MockBooking) {
	mockRepo := rtMocks.NewMockRoomType(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation runs on detached goroutines.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockBookings
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
			assert.NotEmpty(t, roomType.ID)
			assert.Equal(t, "Deluxe", roomType.Name)
			assert.Equal(t, "front-desk", roomType.CreatedBy)

			return nil
		})

	err := svc.Create(ctx, dto.CreateRoomTypeRequest{
		Name:        "Deluxe",
		BasePrice:   2000,
		RoomNumbers: []string{"101", "102"},
	})

	assert.NoError(t, err)
}

func TestRoomTypeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookings := newRoomTypeService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")

	deluxe := model.RoomType{
		ID:          "rt-1",
		Name:        "Deluxe",
		RoomNumbers: model.StringList{"101", "102"},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "unoccupied room type deletes",
			id:   "rt-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockBookings.EXPECT().
					CountActiveByRooms(gomock.Any(), []string{"101", "102"}, gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "active stays block deletion",
			id:   "rt-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockBookings.EXPECT().
					CountActiveByRooms(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "missing room type",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
