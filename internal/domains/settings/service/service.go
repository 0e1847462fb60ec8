package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"syncguard/config"
	"syncguard/infras/otel"
	"syncguard/internal/domains/settings/model"
	"syncguard/internal/domains/settings/model/dto"
	"syncguard/internal/domains/settings/repository"
	"syncguard/shared"
	"syncguard/shared/cache"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
	sharedModel "syncguard/shared/model"

	"github.com/rs/zerolog/log"
)

const cacheGetSettings = "settings:get"

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	GetModel(ctx context.Context) (model.PropertySettings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.GetModel(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings)

	return res, nil
}

// GetModel returns the settings row, seeding defaults on first access.
func (s *serviceImpl) GetModel(ctx context.Context) (res model.PropertySettings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		return res, nil
	}

	filter := shared.FilterByID(constant.SettingsDefaultID, model.FieldID, model.TableName)

	res, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property settings")

		return res, fmt.Errorf("failed to get property settings: %w", err)
	}

	if res.ID == constant.Empty {
		res = defaultSettings()

		if err = s.repo.Insert(ctx, res); err != nil {
			log.Error().Err(err).Msg("failed to seed property settings")

			return res, fmt.Errorf("failed to seed property settings: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if reflect.DeepEqual(req, dto.UpdateSettingsRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err := s.GetModel(ctx); err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	filter := shared.FilterByID(constant.SettingsDefaultID, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, actor)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property settings")

		return fmt.Errorf("failed to update property settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings from cache")
		}
	}()

	return nil
}

func defaultSettings() model.PropertySettings {
	now := time.Now()

	return model.PropertySettings{
		ID:             constant.SettingsDefaultID,
		GSTRatePercent: constant.DefaultGSTRatePercent,
		CheckInTime:    constant.DefaultCheckInTime,
		CheckoutCutoff: constant.DefaultCheckoutCutoff,
		Metadata: sharedModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}
