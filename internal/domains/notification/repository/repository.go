package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/notification/model"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	gRepo "syncguard/shared/repository"
)

type Notification interface {
	Insert(ctx context.Context, model model.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notification, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	MarkAllRead(ctx context.Context) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// MarkAllRead flags every undismissed notification as read in one statement.
func (repo *repositoryImpl) MarkAllRead(ctx context.Context) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".notification.MarkAllRead")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET is_read = TRUE WHERE is_read = FALSE AND dismissed = FALSE", model.TableName)

	if _, err := repo.db.Write.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
