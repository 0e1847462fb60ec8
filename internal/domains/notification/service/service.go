package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"syncguard/infras/otel"
	"syncguard/internal/domains/notification/model"
	"syncguard/internal/domains/notification/model/dto"
	"syncguard/internal/domains/notification/repository"
	"syncguard/shared"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/failure"
	sharedModel "syncguard/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event is the payload services emit when something operator-visible happens.
// Category and Priority default to the system tab and normal urgency when the
// caller leaves them empty.
type Event struct {
	Type       string
	Category   string
	Title      string
	Message    string
	Priority   string
	BookingID  string
	RoomNumber string
	Details    model.Details
}

type Notification interface {
	Emit(ctx context.Context, event Event)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Dismiss(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Notification
	otel otel.Otel
}

func New(repo repository.Notification, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Emit records an event for the operator feed. Persistence failures are
// logged and swallowed; a missed notification never fails the operation
// that produced it.
func (s *serviceImpl) Emit(ctx context.Context, event Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Emit")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if event.Category == constant.Empty {
		event.Category = model.CategorySystem
	}

	if event.Priority == constant.Empty {
		event.Priority = model.PriorityNormal
	}

	notification := model.Notification{
		ID:         uuid.NewString(),
		Type:       event.Type,
		Category:   event.Category,
		Title:      event.Title,
		Message:    event.Message,
		Priority:   event.Priority,
		BookingID:  event.BookingID,
		RoomNumber: event.RoomNumber,
		Details:    event.Details,
		Metadata: sharedModel.Metadata{
			CreatedAt:  time.Now(),
			CreatedBy:  actor,
			ModifiedAt: time.Now(),
			ModifiedBy: actor,
		},
	}

	if err := s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to persist notification")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, model.FieldIsRead, "MarkRead")
}

func (s *serviceImpl) Dismiss(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, model.FieldDismissed, "Dismiss")
}

func (s *serviceImpl) setFlag(ctx context.Context, id, field, op string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification."+op)
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	updatedFields := map[string]any{
		field:                    true,
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update notification")

		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.MarkAllRead(ctx); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications read")

		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}
