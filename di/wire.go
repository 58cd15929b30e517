//go:build wireinject
// +build wireinject

package di

import (
	"busline/config"
	"busline/infras/jwt"
	"busline/infras/kafka"
	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/infras/redis"
	"busline/permissions"
	"busline/shared/cache"
	"busline/transport/http"
	"busline/transport/http/middleware"
	"busline/transport/http/router"

	"github.com/google/wire"

	auditRepository "busline/internal/domains/audit/repository"
	auditService "busline/internal/domains/audit/service"
	authService "busline/internal/domains/auth/service"
	bookingRepository "busline/internal/domains/booking/repository"
	bookingService "busline/internal/domains/booking/service"
	dashboardService "busline/internal/domains/dashboard/service"
	fleetRepository "busline/internal/domains/fleet/repository"
	fleetService "busline/internal/domains/fleet/service"
	inventoryRepository "busline/internal/domains/inventory/repository"
	inventoryService "busline/internal/domains/inventory/service"
	routeRepository "busline/internal/domains/route/repository"
	routeService "busline/internal/domains/route/service"
	tripRepository "busline/internal/domains/trip/repository"
	tripService "busline/internal/domains/trip/service"
	userRepository "busline/internal/domains/user/repository"

	auditHandler "busline/internal/handlers/audit"
	authHandler "busline/internal/handlers/auth"
	bookingHandler "busline/internal/handlers/booking"
	dashboardHandler "busline/internal/handlers/dashboard"
	fleetHandler "busline/internal/handlers/fleet"
	inventoryHandler "busline/internal/handlers/inventory"
	routeHandler "busline/internal/handlers/route"
	tripHandler "busline/internal/handlers/trip"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var fleetDomain = wire.NewSet(
	fleetRepository.NewBus,
	fleetRepository.NewBusType,
	fleetService.New,
)

var routeDomain = wire.NewSet(
	routeRepository.New,
	routeService.New,
)

var tripDomain = wire.NewSet(
	tripRepository.New,
	tripService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	auditDomain,
	authDomain,
	fleetDomain,
	routeDomain,
	tripDomain,
	inventoryDomain,
	bookingDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	auditHandler.New,
	authHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	fleetHandler.New,
	inventoryHandler.New,
	routeHandler.New,
	tripHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
