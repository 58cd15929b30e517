package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	auditModel "busline/internal/domains/audit/model"
	auditRepo "busline/internal/domains/audit/repository"
	"busline/internal/domains/route/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/logger"
	gRepo "busline/shared/repository"
	"context"
	"fmt"
)

type Route interface {
	Insert(ctx context.Context, model model.Route) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Route, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Route, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteArchive(ctx context.Context, audit auditModel.Audit, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Route]
	db        *postgres.Connection
	auditRepo auditRepo.Audit
	otel      otel.Otel
}

func New(db *postgres.Connection, auditRepo auditRepo.Audit, otel otel.Otel) Route {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Route](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		auditRepo:  auditRepo,
		otel:       otel,
	}
}

// Insert stores the route, translating a duplicate origin and destination
// pair into a client error. Covers creates racing past the service's
// duplicate check.
func (repo *repositoryImpl) Insert(ctx context.Context, route model.Route) error {
	err := repo.Repository.Insert(ctx, route)
	if gRepo.IsUniqueViolation(err) {
		return failure.BadRequestFromString("route with this origin and destination already exists") // nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}

// DeleteArchive removes the route and records the deleted row in the audit
// log within one transaction, so the archive and the delete cannot diverge.
func (repo *repositoryImpl) DeleteArchive(ctx context.Context, audit auditModel.Audit, filter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".route.DeleteArchive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if err = repo.auditRepo.InsertTx(ctx, tx, audit); err != nil {
		return fmt.Errorf("failed to archive route: %w", err)
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		if gRepo.IsFkViolation(err) {
			err = failure.BadRequestFromString("cannot delete route: it has trips associated with it")

			return err
		}

		return fmt.Errorf("failed to delete route: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit route delete: %w", err)
	}

	return nil
}
