package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/config"
	"syncguard/infras/otel/mocks"
	bookingModel "syncguard/internal/domains/booking/model"
	guestMocks "syncguard/internal/domains/guest/mocks"
	"syncguard/internal/domains/guest/model"
	"syncguard/internal/domains/guest/service"
	cacheMocks "syncguard/shared/cache/mocks"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

func newGuestService(ctrl *gomock.Controller) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation runs on detached goroutines.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func syncContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")
}

func TestGuestService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newGuestService(ctrl)

	stored := model.GuestProfile{
		ID:          "profile-1",
		Name:        "Asha Rao",
		PhoneNumber: "9876543210",
		Email:       "asha@example.com",
		City:        "Mysuru",
	}

	t.Run("no identity is a no-op", func(t *testing.T) {
		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{Email: "only@example.com"}, "2025-03-10")

		assert.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("nil details are a no-op", func(t *testing.T) {
		id, err := svc.Sync(syncContext(), nil, "2025-03-10")

		assert.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("explicit profile id wins", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "2025-03-10", fields[model.FieldLastCheckIn])

				return nil
			})

		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			ProfileID:   "profile-1",
			Name:        "Asha Rao",
			PhoneNumber: "9876543210",
		}, "2025-03-10")

		assert.NoError(t, err)
		assert.Equal(t, "profile-1", id)
	})

	t.Run("stale profile id falls through to name and phone", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.GuestProfile{}, nil)

		mockRepo.EXPECT().
			GetByNameAndPhone(gomock.Any(), "Asha Rao", "9876543210").
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			ProfileID:   "deleted",
			Name:        "Asha Rao",
			PhoneNumber: "9876543210",
		}, "2025-03-10")

		assert.NoError(t, err)
		assert.Equal(t, "profile-1", id)
	})

	t.Run("phone-only match picks the latest profile", func(t *testing.T) {
		mockRepo.EXPECT().
			GetLatestByPhone(gomock.Any(), "9876543210").
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			PhoneNumber: "9876543210",
		}, "2025-03-11")

		assert.NoError(t, err)
		assert.Equal(t, "profile-1", id)
	})

	t.Run("merge keeps stored values when incoming fields are empty", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByNameAndPhone(gomock.Any(), "Asha Rao", "9876543210").
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				// Empty incoming email must not erase the stored one.
				_, touched := fields["email"]
				assert.False(t, touched)

				// A new value overwrites.
				assert.Equal(t, "Bengaluru", fields["city"])
				assert.Equal(t, "2025-03-12", fields[model.FieldLastCheckIn])

				return nil
			})

		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			Name:        "Asha Rao",
			PhoneNumber: "9876543210",
			City:        "Bengaluru",
		}, "2025-03-12")

		assert.NoError(t, err)
		assert.Equal(t, "profile-1", id)
	})

	t.Run("miss creates a new profile", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByNameAndPhone(gomock.Any(), "Ravi Kumar", "9000000000").
			Return(model.GuestProfile{}, nil)

		mockRepo.EXPECT().
			GetLatestByPhone(gomock.Any(), "9000000000").
			Return(model.GuestProfile{}, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, profile model.GuestProfile) error {
				assert.NotEmpty(t, profile.ID)
				assert.Equal(t, "Ravi Kumar", profile.Name)
				assert.Equal(t, "2025-04-01", profile.LastCheckIn)
				assert.Equal(t, "front-desk", profile.CreatedBy)

				return nil
			})

		id, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			Name:        "Ravi Kumar",
			PhoneNumber: "9000000000",
		}, "2025-04-01")

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("lookup failure surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByNameAndPhone(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.GuestProfile{}, errors.New("database error"))

		_, err := svc.Sync(syncContext(), &bookingModel.GuestDetails{
			Name:        "Asha Rao",
			PhoneNumber: "9876543210",
		}, "2025-03-10")

		assert.Error(t, err)
	})
}

func TestGuestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newGuestService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			id:   "profile-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "missing profile",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(syncContext(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
