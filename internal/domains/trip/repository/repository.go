package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	invModel "busline/internal/domains/inventory/model"
	invRepo "busline/internal/domains/inventory/repository"
	"busline/internal/domains/trip/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/logger"
	gRepo "busline/shared/repository"
	"context"
	"fmt"
)

type Trip interface {
	CreateWithSeats(ctx context.Context, trip model.Trip, seats []invModel.TripSeat) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Trip, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Trip, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteWithSeats(ctx context.Context, tripID string) error
}

const (
	tripHasBookingsQuery = `SELECT EXISTS (SELECT 1 FROM bookings WHERE trip_id = $1)`
	deleteTripSeatsQuery = `DELETE FROM trip_seats WHERE trip_id = $1`
	deleteTripQuery      = `DELETE FROM trips WHERE id = $1`
)

type repositoryImpl struct {
	gRepo.Repository[model.Trip]
	db      *postgres.Connection
	invRepo invRepo.Inventory
	otel    otel.Otel
}

func New(db *postgres.Connection, invRepo invRepo.Inventory, otel otel.Otel) Trip {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Trip](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		invRepo:    invRepo,
		otel:       otel,
	}
}

// CreateWithSeats inserts the trip and its full seat inventory in one
// transaction. A trip is never visible without its seats.
func (repo *repositoryImpl) CreateWithSeats(ctx context.Context, trip model.Trip, seats []invModel.TripSeat) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trip.CreateWithSeats")
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

	if err = repo.InsertTx(ctx, tx, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if err = repo.invRepo.InsertBulkTx(ctx, tx, seats); err != nil {
		return fmt.Errorf("failed to insert trip seats: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit trip create: %w", err)
	}

	return nil
}

// DeleteWithSeats removes the trip together with its unsold seat inventory in
// one transaction. A trip that already has bookings cannot be deleted; a
// booking committed between the check and the delete hits the seat foreign
// key and is reported the same way.
func (repo *repositoryImpl) DeleteWithSeats(ctx context.Context, tripID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trip.DeleteWithSeats")
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

	var hasBookings bool

	if err = tx.GetContext(ctx, &hasBookings, tripHasBookingsQuery, tripID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check trip bookings: %w", err)
	}

	if hasBookings {
		err = failure.BadRequestFromString("cannot delete trip: it has bookings associated with it")

		return err // nolint:wrapcheck
	}

	if _, err = tx.ExecContext(ctx, deleteTripSeatsQuery, tripID); err != nil {
		if gRepo.IsFkViolation(err) {
			err = failure.BadRequestFromString("cannot delete trip: it has bookings associated with it")

			return err // nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete trip seats: %w", err)
	}

	if _, err = tx.ExecContext(ctx, deleteTripQuery, tripID); err != nil {
		if gRepo.IsFkViolation(err) {
			err = failure.BadRequestFromString("cannot delete trip: it has bookings associated with it")

			return err // nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit trip delete: %w", err)
	}

	return nil
}
