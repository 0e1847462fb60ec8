package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/ota/model"
	gDto "syncguard/shared/dto"
	gRepo "syncguard/shared/repository"
)

type OTA interface {
	Insert(ctx context.Context, model model.OTAConnection) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OTAConnection, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OTAConnection, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.OTAConnection]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) OTA {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OTAConnection](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
