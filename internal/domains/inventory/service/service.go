package service

import (
	"busline/infras/otel"
	"busline/internal/domains/inventory/model"
	"busline/internal/domains/inventory/model/dto"
	"busline/internal/domains/inventory/repository"
	tripModel "busline/internal/domains/trip/model"
	tripRepo "busline/internal/domains/trip/repository"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Inventory interface {
	ListSeats(ctx context.Context, tripID string) (dto.TripSeatsResponse, error)
}

// serviceImpl reads seat state straight from the database on every call.
// Seat availability is never cached: a stale seat map would advertise seats
// the reservation engine can no longer claim.
type serviceImpl struct {
	repo     repository.Inventory
	tripRepo tripRepo.Trip
	otel     otel.Otel
}

func New(repo repository.Inventory, tripRepo tripRepo.Trip, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:     repo,
		tripRepo: tripRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) ListSeats(ctx context.Context, tripID string) (res dto.TripSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ListSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.tripRepo.Exist(ctx, shared.FilterByID(tripID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if trip exists")

		return res, fmt.Errorf("failed to check if trip exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("trip not found") // nolint:wrapcheck
	}

	seats, err := s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldSeatNumber, SortDir: "ASC"},
		shared.FilterByID(tripID, model.FieldTripID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip seats")

		return res, fmt.Errorf("failed to get trip seats: %w", err)
	}

	res.FromModels(tripID, seats)

	return res, nil
}
