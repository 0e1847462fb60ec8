package service

import (
	"context"
	"fmt"
	"time"

	"syncguard/infras/otel"
	"syncguard/internal/domains/ota/model"
	"syncguard/internal/domains/ota/model/dto"
	"syncguard/internal/domains/ota/repository"
	"syncguard/shared"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/failure"

	"github.com/rs/zerolog/log"
)

type OTA interface {
	Create(ctx context.Context, req dto.CreateOTAConnectionRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOTAConnectionsResponse, error)
	Get(ctx context.Context, id string) (dto.OTAConnectionResponse, error)
	Update(ctx context.Context, req dto.UpdateOTAConnectionRequest, id string) error
	SetStopped(ctx context.Context, id string, stopped bool) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.OTA
	otel otel.Otel
}

func New(repo repository.OTA, otel otel.Otel) OTA {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOTAConnectionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create ota connection")

		return fmt.Errorf("failed to create ota connection: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOTAConnectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ota connections")

		return res, fmt.Errorf("failed to count ota connections: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ota connections")

		return res, fmt.Errorf("failed to get ota connections: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OTAConnectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	connection, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ota connection")

		return res, fmt.Errorf("failed to get ota connection: %w", err)
	}

	if connection.ID == constant.Empty {
		return res, failure.NotFound("ota connection not found") // nolint:wrapcheck
	}

	res.FromModel(connection)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOTAConnectionRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateOTAConnectionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ota connection exists")

		return fmt.Errorf("failed to check if ota connection exists: %w", err)
	}

	if !exist {
		return failure.NotFound("ota connection not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor)

	// A credential change re-stamps the validation marker.
	if req.Key != constant.Empty {
		updatedFields["last_validated"] = time.Now().UnixMilli()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update ota connection")

		return fmt.Errorf("failed to update ota connection: %w", err)
	}

	return nil
}

// SetStopped toggles the sell-stop flag without touching other fields.
func (s *serviceImpl) SetStopped(ctx context.Context, id string, stopped bool) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.SetStopped")
	defer scope.End()
	defer scope.TraceIfError(nil)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ota connection exists")

		return fmt.Errorf("failed to check if ota connection exists: %w", err)
	}

	if !exist {
		return failure.NotFound("ota connection not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		"is_stopped":             stopped,
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update ota connection")

		return fmt.Errorf("failed to update ota connection: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ota.Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ota connection exists")

		return fmt.Errorf("failed to check if ota connection exists: %w", err)
	}

	if !exist {
		return failure.NotFound("ota connection not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete ota connection")

		return fmt.Errorf("failed to delete ota connection: %w", err)
	}

	return nil
}
