package fleet

import (
	"busline/infras/otel"
	"busline/internal/domains/fleet/model"
	"busline/internal/domains/fleet/model/dto"
	"busline/internal/domains/fleet/service"
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
	service service.Fleet
	otel    otel.Otel
}

func New(service service.Fleet, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bus-types", func(r chi.Router) {
		r.Get("/", handler.GetBusTypes)
	})

	r.Route("/buses", func(r chi.Router) {
		r.Post("/", handler.CreateBus)
		r.Get("/", handler.GetBuses)
		r.Get("/{id}", handler.GetBusByID)
		r.Put("/{id}", handler.UpdateBus)
		r.Delete("/{id}", handler.DeleteBus)
	})
}

// GetBusTypes lists the coach layouts buses can be registered under.
func (handler *Handler) GetBusTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusTypes")
	defer scope.End()

	res, err := handler.service.GetBusTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bus types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBus registers a coach into the fleet.
func (handler *Handler) CreateBus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBus")
	defer scope.End()

	req := dto.CreateBusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateBus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bus")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bus created successfully")

	response.WithMessage(w, http.StatusCreated, "Bus created successfully")
}

// GetBuses lists buses with their layout joined in.
func (handler *Handler) GetBuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if regNumber := r.URL.Query().Get(model.FieldRegNumber); regNumber != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRegNumber,
			Operator: gDto.FilterOperatorLike,
			Value:    regNumber,
			Table:    model.BusTableName,
		})
	}

	if active := r.URL.Query().Get(model.FieldActive); active != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(active),
			Table:    model.BusTableName,
		})
	}

	buses, err := handler.service.GetAllBuses(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get buses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, buses)
}

// GetBusByID retrieves a single bus.
func (handler *Handler) GetBusByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetBus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bus")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBus updates a bus registration.
func (handler *Handler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateBus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bus")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bus updated successfully")

	response.WithMessage(w, http.StatusOK, "Bus updated successfully")
}

// DeleteBus archives a bus into the audit trail and removes it.
func (handler *Handler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteBus(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bus")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bus deleted successfully")

	response.WithMessage(w, http.StatusOK, "Bus deleted successfully")
}
