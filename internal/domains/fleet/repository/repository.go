package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	auditModel "busline/internal/domains/audit/model"
	auditRepo "busline/internal/domains/audit/repository"
	"busline/internal/domains/fleet/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/logger"
	gRepo "busline/shared/repository"
	"context"
	"fmt"
)

type Bus interface {
	Insert(ctx context.Context, model model.Bus) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bus, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteArchive(ctx context.Context, audit auditModel.Audit, filter gDto.FilterGroup) error
}

type busRepositoryImpl struct {
	gRepo.Repository[model.Bus]
	db        *postgres.Connection
	auditRepo auditRepo.Audit
	otel      otel.Otel
}

func NewBus(db *postgres.Connection, auditRepo auditRepo.Audit, otel otel.Otel) Bus {
	return &busRepositoryImpl{
		Repository: gRepo.NewRepository[model.Bus](model.BusEntityName, model.BusTableName, model.FieldID, db, otel),
		db:         db,
		auditRepo:  auditRepo,
		otel:       otel,
	}
}

// Insert stores the bus, translating a duplicate registration number into a
// client error. Covers creates racing past the service's duplicate check.
func (repo *busRepositoryImpl) Insert(ctx context.Context, bus model.Bus) error {
	err := repo.Repository.Insert(ctx, bus)
	if gRepo.IsUniqueViolation(err) {
		return failure.BadRequestFromString("bus with this registration number already exists") // nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}

// DeleteArchive removes the bus and records the deleted row in the audit log
// within one transaction.
func (repo *busRepositoryImpl) DeleteArchive(ctx context.Context, audit auditModel.Audit, filter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bus.DeleteArchive")
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
		return fmt.Errorf("failed to archive bus: %w", err)
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		if gRepo.IsFkViolation(err) {
			err = failure.BadRequestFromString("cannot delete bus: it has trips or bookings associated with it")

			return err
		}

		return fmt.Errorf("failed to delete bus: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit bus delete: %w", err)
	}

	return nil
}

type BusType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BusType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BusType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type busTypeRepositoryImpl struct {
	gRepo.Repository[model.BusType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBusType(db *postgres.Connection, otel otel.Otel) BusType {
	return &busTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.BusType](model.BusTypeEntityName, model.BusTypeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
