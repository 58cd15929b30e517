package service

import (
	"busline/config"
	"busline/infras/kafka"
	"busline/infras/otel"
	"busline/internal/domains/booking/model"
	"busline/internal/domains/booking/model/dto"
	"busline/internal/domains/booking/repository"
	"busline/shared"
	"busline/shared/cache"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.ReserveResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	kafka kafka.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, kafkaClient kafka.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		kafka: kafkaClient,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Reserve books the requested seats as one atomic claim. The repository
// either claims every seat and persists the booking, or persists nothing;
// the service maps the outcome, announces confirmed bookings on Kafka and
// drops the stale listing caches.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.ReserveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, lines, err := s.repo.Reserve(ctx, req.ToModel(user), req.Seats)
	if err != nil {
		log.Error().Err(err).Str("tripID", req.TripID).Strs("seats", req.Seats).Msg("reservation rejected")

		return res, err // nolint:wrapcheck
	}

	res.FromModels(booking, lines)

	log.Info().
		Str("bookingID", booking.ID).
		Str("tripID", booking.TripID).
		Strs("seats", req.Seats).
		Int64("totalPrice", booking.TotalPrice).
		Msg("reservation confirmed")

	go func() {
		c := context.WithoutCancel(ctx)

		seats := make([]string, len(lines))
		for i, line := range lines {
			seats[i] = line.SeatNumber
		}

		event := kafka.Message{
			Key: booking.ID,
			Value: dto.BookingConfirmedEvent{
				BookingID:  booking.ID,
				TripID:     booking.TripID,
				Seats:      seats,
				TotalPrice: booking.TotalPrice,
				Source:     booking.Source,
			},
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingConfirmed, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}
