package route

import (
	"busline/infras/otel"
	"busline/internal/domains/route/model"
	"busline/internal/domains/route/model/dto"
	"busline/internal/domains/route/service"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/validator"
	"busline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Route
	otel    otel.Otel
}

func New(service service.Route, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/routes", func(r chi.Router) {
		r.Post("/", handler.CreateRoute)
		r.Get("/", handler.GetRoutes)
		r.Get("/{id}", handler.GetRouteByID)
		r.Put("/{id}", handler.UpdateRoute)
		r.Delete("/{id}", handler.DeleteRoute)
	})
}

// CreateRoute registers a city pair the operator serves.
func (handler *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoute")
	defer scope.End()

	req := dto.CreateRouteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create route")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Route created successfully")

	response.WithMessage(w, http.StatusCreated, "Route created successfully")
}

// GetRoutes lists routes.
func (handler *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoutes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if origin := r.URL.Query().Get(model.FieldOrigin); origin != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOrigin,
			Operator: gDto.FilterOperatorLike,
			Value:    origin,
			Table:    model.TableName,
		})
	}

	if destination := r.URL.Query().Get(model.FieldDestination); destination != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Operator: gDto.FilterOperatorLike,
			Value:    destination,
			Table:    model.TableName,
		})
	}

	if active := r.URL.Query().Get(model.FieldActive); active != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(active),
			Table:    model.TableName,
		})
	}

	routes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get routes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, routes)
}

// GetRouteByID retrieves a single route.
func (handler *Handler) GetRouteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRouteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get route")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoute updates a route.
func (handler *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoute")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRouteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update route")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Route updated successfully")

	response.WithMessage(w, http.StatusOK, "Route updated successfully")
}

// DeleteRoute archives a route into the audit trail and removes it.
func (handler *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoute")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete route")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Route deleted successfully")

	response.WithMessage(w, http.StatusOK, "Route deleted successfully")
}
