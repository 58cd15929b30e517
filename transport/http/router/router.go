package router

import (
	"busline/config"
	"busline/internal/handlers/audit"
	"busline/internal/handlers/auth"
	"busline/internal/handlers/booking"
	"busline/internal/handlers/dashboard"
	"busline/internal/handlers/fleet"
	"busline/internal/handlers/inventory"
	"busline/internal/handlers/route"
	"busline/internal/handlers/trip"
	"busline/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Fleet     fleet.Handler
	Route     route.Handler
	Trip      trip.Handler
	Inventory inventory.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
	Audit     audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Fleet.Router(routerGroup)
		r.DomainHandlers.Route.Router(routerGroup)
		r.DomainHandlers.Trip.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}
