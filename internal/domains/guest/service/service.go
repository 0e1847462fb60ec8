package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"syncguard/config"
	"syncguard/infras/otel"
	bookingModel "syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/guest/model"
	"syncguard/internal/domains/guest/model/dto"
	"syncguard/internal/domains/guest/repository"
	"syncguard/shared"
	"syncguard/shared/cache"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/failure"
	sharedModel "syncguard/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

type Guest interface {
	Sync(ctx context.Context, details *bookingModel.GuestDetails, checkInDate string) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Sync resolves booking guest details against the profile store and returns
// the matching profile ID. Resolution order: explicit profile ID, exact
// (name, phone) match, then most recent profile sharing the phone number.
// Non-empty incoming fields win during a merge; empty fields never erase
// stored data. A miss creates a new profile.
func (s *serviceImpl) Sync(ctx context.Context, details *bookingModel.GuestDetails, checkInDate string) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Sync")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !details.HasIdentity() {
		return constant.Empty, nil
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	existing, err := s.resolve(ctx, details)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve guest profile")

		return constant.Empty, fmt.Errorf("failed to resolve guest profile: %w", err)
	}

	if existing.ID == constant.Empty {
		profile := profileFromDetails(details)
		profile.ID = uuid.NewString()
		profile.LastCheckIn = checkInDate
		profile.Metadata = sharedModel.Metadata{
			CreatedAt:  time.Now(),
			CreatedBy:  actor,
			ModifiedAt: time.Now(),
			ModifiedBy: actor,
		}

		if err = s.repo.Insert(ctx, profile); err != nil {
			log.Error().Err(err).Msg("failed to create guest profile")

			return constant.Empty, fmt.Errorf("failed to create guest profile: %w", err)
		}

		s.invalidate(ctx, profile.ID)

		return profile.ID, nil
	}

	updatedFields := mergeFields(existing, details)
	updatedFields[model.FieldLastCheckIn] = checkInDate
	updatedFields[constant.FieldModifiedAt] = time.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	filter := shared.FilterByID(existing.ID, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to merge guest profile")

		return constant.Empty, fmt.Errorf("failed to merge guest profile: %w", err)
	}

	s.invalidate(ctx, existing.ID)

	return existing.ID, nil
}

func (s *serviceImpl) resolve(ctx context.Context, details *bookingModel.GuestDetails) (model.GuestProfile, error) {
	if details.ProfileID != constant.Empty {
		profile, err := s.repo.Get(ctx, shared.FilterByID(details.ProfileID, model.FieldID, model.TableName))
		if err != nil {
			return model.GuestProfile{}, err
		}

		if profile.ID != constant.Empty {
			return profile, nil
		}
	}

	if details.Name != constant.Empty && details.PhoneNumber != constant.Empty {
		profile, err := s.repo.GetByNameAndPhone(ctx, details.Name, details.PhoneNumber)
		if err != nil {
			return model.GuestProfile{}, err
		}

		if profile.ID != constant.Empty {
			return profile, nil
		}
	}

	if details.PhoneNumber != constant.Empty {
		return s.repo.GetLatestByPhone(ctx, details.PhoneNumber)
	}

	return model.GuestProfile{}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateGuestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest profile not found")

		return failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest profile not found")

		return failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()
}

func profileFromDetails(details *bookingModel.GuestDetails) model.GuestProfile {
	return model.GuestProfile{
		Name:                details.Name,
		PhoneNumber:         details.PhoneNumber,
		Email:               details.Email,
		IDType:              details.IDType,
		IDNumber:            details.IDNumber,
		Address:             details.Address,
		City:                details.City,
		State:               details.State,
		PinCode:             details.PinCode,
		Country:             details.Country,
		Nationality:         details.Nationality,
		Gender:              details.Gender,
		DOB:                 details.DOB,
		FatherOrHusbandName: details.FatherOrHusbandName,
		PassportNumber:      details.PassportNumber,
		PassportPlaceIssue:  details.PassportPlaceIssue,
		PassportIssueDate:   details.PassportIssueDate,
		PassportExpiry:      details.PassportExpiry,
		VisaNumber:          details.VisaNumber,
		VisaType:            details.VisaType,
		VisaPlaceIssue:      details.VisaPlaceIssue,
		VisaIssueDate:       details.VisaIssueDate,
		VisaExpiry:          details.VisaExpiry,
	}
}

// mergeFields builds the column set for an existing profile. Only non-empty
// incoming values that differ from what is stored are written.
func mergeFields(existing model.GuestProfile, details *bookingModel.GuestDetails) map[string]any {
	incoming := profileFromDetails(details)

	fields := map[string]any{}
	merge := func(column, current, next string) {
		if next != constant.Empty && next != current {
			fields[column] = next
		}
	}

	merge(model.FieldName, existing.Name, incoming.Name)
	merge(model.FieldPhoneNumber, existing.PhoneNumber, incoming.PhoneNumber)
	merge("email", existing.Email, incoming.Email)
	merge("id_type", existing.IDType, incoming.IDType)
	merge("id_number", existing.IDNumber, incoming.IDNumber)
	merge("address", existing.Address, incoming.Address)
	merge("city", existing.City, incoming.City)
	merge("state", existing.State, incoming.State)
	merge("pin_code", existing.PinCode, incoming.PinCode)
	merge("country", existing.Country, incoming.Country)
	merge("nationality", existing.Nationality, incoming.Nationality)
	merge("gender", existing.Gender, incoming.Gender)
	merge("dob", existing.DOB, incoming.DOB)
	merge("father_or_husband_name", existing.FatherOrHusbandName, incoming.FatherOrHusbandName)
	merge("passport_number", existing.PassportNumber, incoming.PassportNumber)
	merge("passport_place_issue", existing.PassportPlaceIssue, incoming.PassportPlaceIssue)
	merge("passport_issue_date", existing.PassportIssueDate, incoming.PassportIssueDate)
	merge("passport_expiry", existing.PassportExpiry, incoming.PassportExpiry)
	merge("visa_number", existing.VisaNumber, incoming.VisaNumber)
	merge("visa_type", existing.VisaType, incoming.VisaType)
	merge("visa_place_issue", existing.VisaPlaceIssue, incoming.VisaPlaceIssue)
	merge("visa_issue_date", existing.VisaIssueDate, incoming.VisaIssueDate)
	merge("visa_expiry", existing.VisaExpiry, incoming.VisaExpiry)

	return fields
}
