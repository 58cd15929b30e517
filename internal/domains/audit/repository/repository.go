package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/audit/model"
	gDto "busline/shared/dto"
	gRepo "busline/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type Audit interface {
	Insert(ctx context.Context, model model.Audit) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Audit) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Audit, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Audit]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Audit](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
