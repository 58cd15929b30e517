package trip

import (
	"busline/infras/otel"
	"busline/internal/domains/trip/model"
	"busline/internal/domains/trip/model/dto"
	"busline/internal/domains/trip/service"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/validator"
	"busline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Trip
	otel    otel.Otel
}

func New(service service.Trip, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/trips", func(r chi.Router) {
		r.Post("/", handler.CreateTrip)
		r.Get("/", handler.GetTrips)
		r.Get("/{id}", handler.GetTripByID)
		r.Put("/{id}", handler.UpdateTrip)
		r.Delete("/{id}", handler.DeleteTrip)
	})
}

// CreateTrip schedules a departure and builds its seat inventory from the
// bus layout in the same transaction.
func (handler *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTrip")
	defer scope.End()

	req := dto.CreateTripRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create trip")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip created successfully")

	response.WithMessage(w, http.StatusCreated, "Trip created successfully")
}

// GetTrips lists trips with route and bus context.
func (handler *Handler) GetTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrips")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if routeID := r.URL.Query().Get(model.FieldRouteID); routeID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRouteID,
			Operator: gDto.FilterOperatorEq,
			Value:    routeID,
			Table:    model.TableName,
		})
	}

	if busID := r.URL.Query().Get(model.FieldBusID); busID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBusID,
			Operator: gDto.FilterOperatorEq,
			Value:    busID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if departingSince := r.URL.Query().Get("departing_since"); departingSince != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDepartureAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    departingSince,
			Table:    model.TableName,
			ArgName:  "departing_since",
		})
	}

	trips, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trips")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trips)
}

// GetTripByID retrieves a single trip.
func (handler *Handler) GetTripByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTrip reschedules a trip or moves it through its lifecycle.
func (handler *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrip")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTripRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update trip")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip updated successfully")

	response.WithMessage(w, http.StatusOK, "Trip updated successfully")
}

// DeleteTrip removes a trip and its unsold inventory. Trips that already
// have bookings are rejected.
func (handler *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTrip")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete trip")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip deleted successfully")

	response.WithMessage(w, http.StatusOK, "Trip deleted successfully")
}
