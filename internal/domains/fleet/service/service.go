package service

import (
	"busline/config"
	"busline/infras/otel"
	auditDto "busline/internal/domains/audit/model/dto"
	"busline/internal/domains/fleet/model"
	"busline/internal/domains/fleet/model/dto"
	"busline/internal/domains/fleet/repository"
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
	cacheGetBus     = "bus:get"
	cacheGetAllBus  = "bus:gets"
	cacheCountBus   = "bus:count"
	cacheGetAllType = "bus_type:gets"
)

type Fleet interface {
	CreateBus(ctx context.Context, req dto.CreateBusRequest) error
	GetAllBuses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBusesResponse, error)
	CountBuses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetBus(ctx context.Context, id string) (dto.BusResponse, error)
	UpdateBus(ctx context.Context, req dto.UpdateBusRequest, id string) error
	DeleteBus(ctx context.Context, id string) error
	GetBusTypes(ctx context.Context) (dto.GetBusTypesResponse, error)
}

type serviceImpl struct {
	busRepo  repository.Bus
	typeRepo repository.BusType
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(busRepo repository.Bus, typeRepo repository.BusType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Fleet {
	return &serviceImpl{
		busRepo:  busRepo,
		typeRepo: typeRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateBus(ctx context.Context, req dto.CreateBusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.CreateBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	typeExists, err := s.typeRepo.Exist(ctx, shared.FilterByID(req.BusTypeID, model.FieldID, model.BusTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bus type exists")

		return fmt.Errorf("failed to check if bus type exists: %w", err)
	}

	if !typeExists {
		return failure.BadRequestFromString("bus type does not exist") // nolint:wrapcheck
	}

	duplicate, err := s.busRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRegNumber,
				Value:    req.RegNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BusTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check registration number")

		return fmt.Errorf("failed to check registration number: %w", err)
	}

	if duplicate {
		return failure.BadRequestFromString("bus with this registration number already exists") // nolint:wrapcheck
	}

	if err = s.busRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create bus")

		return fmt.Errorf("failed to create bus: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBus)
		shared.InvalidateCaches(c, s.cache, cacheCountBus)
	}()

	return nil
}

func (s *serviceImpl) GetAllBuses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.GetAllBuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for buses")

		return res, nil
	}

	total, err := s.CountBuses(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buses")

		return res, fmt.Errorf("failed to count buses: %w", err)
	}

	models, err := s.busRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buses")

		return res, fmt.Errorf("failed to get buses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save buses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountBuses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.CountBuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.busRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buses")

		return res, fmt.Errorf("failed to count buses: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bus count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBus(ctx context.Context, id string) (res dto.BusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.GetBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBus, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bus, err := s.busRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.BusTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return res, fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == constant.Empty {
		return res, failure.NotFound("bus not found") // nolint:wrapcheck
	}

	res.FromModel(bus)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bus to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateBus(ctx context.Context, req dto.UpdateBusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.UpdateBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBusRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.BusTableName)

	exist, err := s.busRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bus exists")

		return fmt.Errorf("failed to check if bus exists: %w", err)
	}

	if !exist {
		return failure.NotFound("bus not found") // nolint:wrapcheck
	}

	if req.BusTypeID != constant.Empty {
		typeExists, err := s.typeRepo.Exist(ctx, shared.FilterByID(req.BusTypeID, model.FieldID, model.BusTypeTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if bus type exists")

			return fmt.Errorf("failed to check if bus type exists: %w", err)
		}

		if !typeExists {
			return failure.BadRequestFromString("bus type does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.busRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update bus")

		return fmt.Errorf("failed to update bus: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBus, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete bus from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBus)
		shared.InvalidateCaches(c, s.cache, cacheCountBus)
	}()

	return nil
}

func (s *serviceImpl) DeleteBus(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.DeleteBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.BusTableName)

	bus, err := s.busRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == constant.Empty {
		return failure.NotFound("bus not found") // nolint:wrapcheck
	}

	audit, err := auditDto.Archive(model.BusTableName, bus.ID, bus, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build bus archive")

		return fmt.Errorf("failed to build bus archive: %w", err)
	}

	if err = s.busRepo.DeleteArchive(ctx, audit, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete bus")

		return fmt.Errorf("failed to delete bus: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBus, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete bus from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBus)
		shared.InvalidateCaches(c, s.cache, cacheCountBus)
	}()

	return nil
}

func (s *serviceImpl) GetBusTypes(ctx context.Context) (res dto.GetBusTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fleet.GetBusTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllType, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.typeRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: "ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus types")

		return res, fmt.Errorf("failed to get bus types: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllType, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bus types to cache")
		}
	}()

	return res, nil
}
