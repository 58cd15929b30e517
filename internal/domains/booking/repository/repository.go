package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/booking/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/logger"
	gRepo "busline/shared/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Booking interface {
	Reserve(ctx context.Context, booking model.Booking, seats []string) (model.Booking, []model.BookingSeat, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type claimedSeat struct {
	id    string
	price int64
}

const (
	tripStatusQuery = `SELECT status FROM trips WHERE id = $1`

	// The sole arbitration point. Only rows still available move to booked;
	// everything else falls out of RETURNING and fails the reservation.
	claimSeatsQuery = `
		UPDATE trip_seats
		SET status = $1, booking_id = $2, modified_at = $3, modified_by = $4
		WHERE trip_id = $5 AND seat_number = ANY($6) AND status = $7
		RETURNING id, seat_number, price`
)

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	seatRepo gRepo.Repository[model.BookingSeat]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		seatRepo:   gRepo.NewRepository[model.BookingSeat](model.SeatEntityName, model.SeatTableName, model.SeatFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reserve atomically claims the requested seats and writes the booking with
// its per-seat lines in a single transaction on the write connection. Either
// every requested seat is claimed and the booking is committed, or nothing
// is persisted.
//
// Logical outcomes come back as typed failures: unknown trip 404, trip not
// open 400, lost seats 409 naming the losers. Anything else is surfaced as a
// transient failure and is safe to retry because the rollback left no state
// behind.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking, seats []string) (res model.Booking, lines []model.BookingSeat, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	requested := slices.Clone(seats)
	slices.Sort(requested)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, nil, failure.Transient(fmt.Errorf("failed to begin reservation: %w", err)) // nolint:wrapcheck
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	var tripStatus string

	err = tx.GetContext(ctx, &tripStatus, tripStatusQuery, booking.TripID)
	if errors.Is(err, sql.ErrNoRows) {
		err = failure.NotFound("trip not found")

		return res, nil, err // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		err = failure.Transient(fmt.Errorf("failed to read trip: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	if tripStatus != constant.TripStatusScheduled {
		err = failure.BadRequestFromString("trip is not open for booking")

		return res, nil, err // nolint:wrapcheck
	}

	rows, err := tx.QueryxContext(ctx, claimSeatsQuery,
		constant.SeatStatusBooked,
		booking.ID,
		booking.ModifiedAt,
		booking.ModifiedBy,
		booking.TripID,
		pq.Array(requested),
		constant.SeatStatusAvailable,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		err = failure.Transient(fmt.Errorf("failed to claim seats: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	claimed := map[string]claimedSeat{}

	for rows.Next() {
		var (
			seatID     string
			seatNumber string
			price      int64
		)

		if err = rows.Scan(&seatID, &seatNumber, &price); err != nil {
			rows.Close()
			logger.ErrorWithStack(err)
			err = failure.Transient(fmt.Errorf("failed to scan claimed seat: %w", err))

			return res, nil, err // nolint:wrapcheck
		}

		claimed[seatNumber] = claimedSeat{id: seatID, price: price}
	}

	rows.Close()

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		err = failure.Transient(fmt.Errorf("failed to read claimed seats: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	if len(claimed) != len(requested) {
		missing := make([]string, 0, len(requested)-len(claimed))

		for _, seat := range requested {
			if _, ok := claimed[seat]; !ok {
				missing = append(missing, seat)
			}
		}

		err = failure.Conflict("seats unavailable: " + strings.Join(missing, ", "))

		return res, nil, err // nolint:wrapcheck
	}

	var total int64

	lines = make([]model.BookingSeat, len(requested))
	for i, seat := range requested {
		claim := claimed[seat]
		total += claim.price

		lines[i] = model.BookingSeat{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			TripSeatID:    claim.id,
			SeatNumber:    seat,
			PassengerName: booking.CustomerName,
			Price:         claim.price,
			Metadata:      booking.Metadata,
		}
	}

	booking.Status = constant.BookingStatusConfirmed
	booking.TotalPrice = total

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		err = failure.Transient(fmt.Errorf("failed to insert booking: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	if err = repo.seatRepo.InsertBulkTx(ctx, tx, lines); err != nil {
		err = failure.Transient(fmt.Errorf("failed to insert booking seats: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		err = failure.Transient(fmt.Errorf("failed to commit reservation: %w", err))

		return res, nil, err // nolint:wrapcheck
	}

	return booking, lines, nil
}
