package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/booking/model"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/logger"
	gRepo "syncguard/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetActiveByRoom(ctx context.Context, roomNumber string) ([]model.Booking, error)
	CountActiveByRooms(ctx context.Context, roomNumbers []string, minCheckOut string) (int, error)
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return tx, nil
}

// GetActiveByRoom returns the bookings that currently hold the given room,
// i.e. status Confirmed or CheckedIn. Callers apply interval overlap on top.
func (repo *repositoryImpl) GetActiveByRoom(ctx context.Context, roomNumber string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetActiveByRoom")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}

// CountActiveByRooms counts Confirmed/CheckedIn bookings holding any of the
// given rooms with a check-out on or after minCheckOut. Used as the delete
// guard for room types.
func (repo *repositoryImpl) CountActiveByRooms(ctx context.Context, roomNumbers []string, minCheckOut string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountActiveByRooms")
	defer scope.End()

	if len(roomNumbers) == 0 {
		return 0, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorIn,
				Value:    roomNumbers,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    minCheckOut,
				Table:    model.TableName,
			},
		},
	}

	return repo.Count(ctx, filter)
}
