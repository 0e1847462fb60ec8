package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/raterules/model"
	gDto "syncguard/shared/dto"
	gRepo "syncguard/shared/repository"
)

type RateRules interface {
	Insert(ctx context.Context, model model.RateRules) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RateRules, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RateRules]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RateRules {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RateRules](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
