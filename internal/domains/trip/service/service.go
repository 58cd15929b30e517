package service

import (
	"busline/config"
	"busline/infras/otel"
	fleetModel "busline/internal/domains/fleet/model"
	fleetRepo "busline/internal/domains/fleet/repository"
	invModel "busline/internal/domains/inventory/model"
	routeModel "busline/internal/domains/route/model"
	routeRepo "busline/internal/domains/route/repository"
	"busline/internal/domains/trip/model"
	"busline/internal/domains/trip/model/dto"
	"busline/internal/domains/trip/repository"
	"busline/shared"
	"busline/shared/cache"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	gModel "busline/shared/model"
	"busline/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrip    = "trip:get"
	cacheGetAllTrip = "trip:gets"
	cacheCountTrip  = "trip:count"
)

type Trip interface {
	Create(ctx context.Context, req dto.CreateTripRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTripsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TripResponse, error)
	Update(ctx context.Context, req dto.UpdateTripRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Trip
	routeRepo routeRepo.Route
	busRepo   fleetRepo.Bus
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Trip, routeRepo routeRepo.Route, busRepo fleetRepo.Bus, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Trip {
	return &serviceImpl{
		repo:      repo,
		routeRepo: routeRepo,
		busRepo:   busRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create schedules a trip and bulk-creates its seat inventory from the bus
// layout, every seat available at the trip's base price.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTripRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	routeExists, err := s.routeRepo.Exist(ctx, shared.FilterByID(req.RouteID, routeModel.FieldID, routeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !routeExists {
		return failure.BadRequestFromString("route does not exist") // nolint:wrapcheck
	}

	bus, err := s.busRepo.Get(ctx, shared.FilterByID(req.BusID, fleetModel.FieldID, fleetModel.BusTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == constant.Empty {
		return failure.BadRequestFromString("bus does not exist") // nolint:wrapcheck
	}

	if !bus.Active {
		return failure.BadRequestFromString("bus is not active") // nolint:wrapcheck
	}

	trip, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse trip request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !trip.ArrivalAt.After(trip.DepartureAt) {
		return failure.BadRequestFromString("arrival must be after departure") // nolint:wrapcheck
	}

	labels := bus.SeatLabels()
	if len(labels) == 0 {
		return failure.BadRequestFromString("bus layout has no seats") // nolint:wrapcheck
	}

	seats := make([]invModel.TripSeat, len(labels))
	for i, label := range labels {
		seats[i] = invModel.TripSeat{
			ID:         uuid.NewString(),
			TripID:     trip.ID,
			SeatNumber: label,
			Status:     constant.SeatStatusAvailable,
			Price:      trip.BasePrice,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	if err = s.repo.CreateWithSeats(ctx, trip, seats); err != nil {
		log.Error().Err(err).Msg("failed to create trip")

		return fmt.Errorf("failed to create trip: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrip)
		shared.InvalidateCaches(c, s.cache, cacheCountTrip)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTripsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTrip, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for trips")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trips")

		return res, fmt.Errorf("failed to count trips: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trips")

		return res, fmt.Errorf("failed to get trips: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trips to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTrip, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trips")

		return res, fmt.Errorf("failed to count trips: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTrip, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	trip, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip")

		return res, fmt.Errorf("failed to get trip: %w", err)
	}

	if trip.ID == constant.Empty {
		return res, failure.NotFound("trip not found") // nolint:wrapcheck
	}

	res.FromModel(trip)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTripRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTripRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if trip exists")

		return fmt.Errorf("failed to check if trip exists: %w", err)
	}

	if !exist {
		return failure.NotFound("trip not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.DepartureAt != constant.Empty {
		departure, err := timezone.Parse(time.RFC3339, req.DepartureAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid departure time: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldDepartureAt] = departure
	}

	if req.ArrivalAt != constant.Empty {
		arrival, err := timezone.Parse(time.RFC3339, req.ArrivalAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid arrival time: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldArrivalAt] = arrival
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update trip")

		return fmt.Errorf("failed to update trip: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrip, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete trip from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrip)
		shared.InvalidateCaches(c, s.cache, cacheCountTrip)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if trip exists")

		return fmt.Errorf("failed to check if trip exists: %w", err)
	}

	if !exist {
		return failure.NotFound("trip not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteWithSeats(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete trip")

		return fmt.Errorf("failed to delete trip: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrip, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete trip from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrip)
		shared.InvalidateCaches(c, s.cache, cacheCountTrip)
	}()

	return nil
}
