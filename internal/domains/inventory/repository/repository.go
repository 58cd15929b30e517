package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/inventory/model"
	gDto "busline/shared/dto"
	gRepo "busline/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type Inventory interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.TripSeat) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TripSeat, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TripSeat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TripSeat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
