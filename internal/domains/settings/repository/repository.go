package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"syncguard/infras/otel"
	"syncguard/infras/postgres"
	"syncguard/internal/domains/settings/model"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	gRepo "syncguard/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Settings interface {
	Insert(ctx context.Context, model model.PropertySettings) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PropertySettings, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	IncrementInvoiceCounterTx(ctx context.Context, tx *sqlx.Tx) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PropertySettings]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PropertySettings](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IncrementInvoiceCounterTx bumps the invoice counter inside the caller's
// transaction and returns the new sequence value. The row lock taken by the
// UPDATE serializes concurrent checkouts.
func (repo *repositoryImpl) IncrementInvoiceCounterTx(ctx context.Context, tx *sqlx.Tx) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.IncrementInvoiceCounterTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + 1 WHERE %s = $1 RETURNING %s",
		model.TableName, model.FieldInvoiceCounter, model.FieldInvoiceCounter, model.FieldID, model.FieldInvoiceCounter,
	)

	var counter int
	if err := tx.GetContext(ctx, &counter, query, constant.SettingsDefaultID); err != nil {
		return 0, fmt.Errorf("failed to increment invoice counter: %w", err)
	}

	return counter, nil
}
