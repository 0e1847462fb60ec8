package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/guest/model"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	gRepo "syncguard/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.GuestProfile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestProfile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByNameAndPhone(ctx context.Context, name, phone string) (model.GuestProfile, error)
	GetLatestByPhone(ctx context.Context, phone string) (model.GuestProfile, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.GuestProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GuestProfile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByNameAndPhone(ctx context.Context, name, phone string) (model.GuestProfile, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetByNameAndPhone")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhoneNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

// GetLatestByPhone resolves a phone-only lookup, preferring the profile
// with the most recent check-in.
func (repo *repositoryImpl) GetLatestByPhone(ctx context.Context, phone string) (model.GuestProfile, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetLatestByPhone")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.TableName + "." + model.FieldLastCheckIn,
		SortDir: gDto.SortDirDesc,
	}

	profiles, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.GuestProfile{}, err
	}

	if len(profiles) == 0 {
		return model.GuestProfile{}, nil
	}

	return profiles[0], nil
}
