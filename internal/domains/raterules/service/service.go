package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"syncguard/infras/otel"
	"syncguard/internal/domains/raterules/model"
	"syncguard/internal/domains/raterules/model/dto"
	"syncguard/internal/domains/raterules/repository"
	rtModel "syncguard/internal/domains/roomtype/model"
	rtRepo "syncguard/internal/domains/roomtype/repository"
	"syncguard/shared"
	"syncguard/shared/constant"
	"syncguard/shared/failure"
	sharedModel "syncguard/shared/model"

	"github.com/rs/zerolog/log"
)

type RateRules interface {
	Get(ctx context.Context) (dto.RateRulesResponse, error)
	Update(ctx context.Context, req dto.UpdateRateRulesRequest) error
	Quote(ctx context.Context, roomTypeID, date string) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo         repository.RateRules
	roomTypeRepo rtRepo.RoomType
	otel         otel.Otel
}

func New(repo repository.RateRules, roomTypeRepo rtRepo.RoomType, otel otel.Otel) RateRules {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.RateRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".raterules.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rules, err := s.getOrSeed(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(rules)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRateRulesRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".raterules.Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if _, err := s.getOrSeed(ctx); err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	updatedFields := map[string]any{
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: actor,
	}

	if req.WeeklyRules != nil {
		updatedFields["weekly_rules"] = req.WeeklyRules
	}

	if req.SpecialEvents != nil {
		updatedFields["special_events"] = req.SpecialEvents
	}

	filter := shared.FilterByID(constant.RateRulesDefaultID, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rate rules")

		return fmt.Errorf("failed to update rate rules: %w", err)
	}

	return nil
}

// Quote derives the nightly rate for a room type on a date. A covering
// special event wins over the weekday rule; the result is clamped to the
// room type's floor and ceiling when those are set.
func (s *serviceImpl) Quote(ctx context.Context, roomTypeID, date string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".raterules.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, parseErr := time.Parse(constant.StayDateFormat, date)
	if parseErr != nil {
		return res, failure.BadRequestFromString("date must be formatted YYYY-MM-DD") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, rtModel.FieldID, rtModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type for quote")

		return res, fmt.Errorf("failed to get room type for quote: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	rules, err := s.getOrSeed(ctx)
	if err != nil {
		return res, err
	}

	res = dto.QuoteResponse{
		RoomTypeID: roomTypeID,
		Date:       date,
		BasePrice:  roomType.BasePrice,
		FinalPrice: roomType.BasePrice,
	}

	for _, event := range rules.SpecialEvents {
		if event.Covers(date) {
			res.FinalPrice = event.Adjustment.Apply(roomType.BasePrice)
			res.AppliedRule = event.Name

			return s.clamp(res, roomType), nil
		}
	}

	weekday := day.Weekday().String()
	if adjustment, ok := rules.WeeklyRules[weekday]; ok {
		res.FinalPrice = adjustment.Apply(roomType.BasePrice)
		res.AppliedRule = weekday
	}

	return s.clamp(res, roomType), nil
}

func (s *serviceImpl) clamp(res dto.QuoteResponse, roomType rtModel.RoomType) dto.QuoteResponse {
	if roomType.FloorPrice > 0 && res.FinalPrice < roomType.FloorPrice {
		res.FinalPrice = roomType.FloorPrice
		res.Clamped = true
	}

	if roomType.CeilingPrice > 0 && res.FinalPrice > roomType.CeilingPrice {
		res.FinalPrice = roomType.CeilingPrice
		res.Clamped = true
	}

	return res
}

func (s *serviceImpl) getOrSeed(ctx context.Context) (model.RateRules, error) {
	filter := shared.FilterByID(constant.RateRulesDefaultID, model.FieldID, model.TableName)

	rules, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate rules")

		return rules, fmt.Errorf("failed to get rate rules: %w", err)
	}

	if rules.ID == constant.Empty {
		now := time.Now()
		rules = model.RateRules{
			ID:            constant.RateRulesDefaultID,
			WeeklyRules:   model.WeeklyRules{},
			SpecialEvents: model.SpecialEvents{},
			Metadata: sharedModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		}

		if err := s.repo.Insert(ctx, rules); err != nil {
			log.Error().Err(err).Msg("failed to seed rate rules")

			return rules, fmt.Errorf("failed to seed rate rules: %w", err)
		}
	}

	return rules, nil
}
