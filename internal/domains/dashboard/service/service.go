package service

import (
	"busline/config"
	"busline/infras/otel"
	bookingModel "busline/internal/domains/booking/model"
	bookingRepo "busline/internal/domains/booking/repository"
	"busline/internal/domains/dashboard/model/dto"
	fleetModel "busline/internal/domains/fleet/model"
	fleetRepo "busline/internal/domains/fleet/repository"
	routeRepo "busline/internal/domains/route/repository"
	tripModel "busline/internal/domains/trip/model"
	tripRepo "busline/internal/domains/trip/repository"
	"busline/shared/cache"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheStats = "dashboard:stats"

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	busRepo     fleetRepo.Bus
	routeRepo   routeRepo.Route
	tripRepo    tripRepo.Trip
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(busRepo fleetRepo.Bus, routeRepo routeRepo.Route, tripRepo tripRepo.Trip, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		busRepo:     busRepo,
		routeRepo:   routeRepo,
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStats, &res)
	if err == nil {
		return res, nil
	}

	res.ActiveBuses, err = s.busRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    fleetModel.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    fleetModel.BusTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count active buses")

		return res, fmt.Errorf("failed to count active buses: %w", err)
	}

	res.TotalRoutes, err = s.routeRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count routes")

		return res, fmt.Errorf("failed to count routes: %w", err)
	}

	now := timezone.Now()

	res.UpcomingTrips, err = s.tripRepo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tripModel.FieldStatus,
				Value:    constant.TripStatusScheduled,
				Operator: gDto.FilterOperatorEq,
				Table:    tripModel.TableName,
			},
			gDto.Filter{
				Field:    tripModel.FieldDepartureAt,
				Value:    now,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    tripModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count upcoming trips")

		return res, fmt.Errorf("failed to count upcoming trips: %w", err)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	res.BookingsToday, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "booked_since",
				Field:    constant.FieldCreatedAt,
				Value:    startOfDay,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's bookings")

		return res, fmt.Errorf("failed to count today's bookings: %w", err)
	}

	res.TotalBookings, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
