package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"syncguard/config"
	"syncguard/infras/otel/mocks"
	settingsMocks "syncguard/internal/domains/settings/mocks"
	"syncguard/internal/domains/settings/model"
	"syncguard/internal/domains/settings/model/dto"
	"syncguard/internal/domains/settings/service"
	"syncguard/shared/cache"
	cacheMocks "syncguard/shared/cache/mocks"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
)

func newSettingsService(ctrl *gomock.Controller) (service.Settings, *settingsMocks.MockSettings, *cacheMocks.MockRedisCache) {
	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func settingsContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")
}

func TestSettingsService_GetModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newSettingsService(ctrl)

	t.Run("first access seeds defaults", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.PropertySettings{}, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, seeded model.PropertySettings) error {
				assert.Equal(t, constant.SettingsDefaultID, seeded.ID)
				assert.Equal(t, constant.DefaultCheckoutCutoff, seeded.CheckoutCutoff)
				assert.Equal(t, constant.DefaultGSTRatePercent, seeded.GSTRatePercent)

				return nil
			})

		res, err := svc.GetModel(settingsContext())

		assert.NoError(t, err)
		assert.Equal(t, constant.SettingsDefaultID, res.ID)
	})

	t.Run("existing row is returned as is", func(t *testing.T) {
		stored := model.PropertySettings{
			ID:             constant.SettingsDefaultID,
			HotelName:      "Hotel Kaveri",
			CheckoutCutoff: "10:30",
			InvoiceCounter: 17,
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		res, err := svc.GetModel(settingsContext())

		assert.NoError(t, err)
		assert.Equal(t, "Hotel Kaveri", res.HotelName)
		assert.Equal(t, 17, res.InvoiceCounter)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newSettingsService(ctrl)

	t.Run("empty request is rejected", func(t *testing.T) {
		err := svc.Update(settingsContext(), dto.UpdateSettingsRequest{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("patch updates the row", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.PropertySettings{ID: constant.SettingsDefaultID}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Hotel Kaveri", fields["hotel_name"])
				assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])

				return nil
			})

		err := svc.Update(settingsContext(), dto.UpdateSettingsRequest{HotelName: "Hotel Kaveri"})

		assert.NoError(t, err)
	})
}
