package inventory

import (
	"busline/infras/otel"
	"busline/internal/domains/inventory/service"
	"busline/shared/constant"
	"busline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/trips/{tripId}/seats", func(r chi.Router) {
		r.Get("/", handler.GetTripSeats)
	})
}

// GetTripSeats returns the live seat map of a trip. The response is never
// cached so a buyer always sees current availability.
func (handler *Handler) GetTripSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripSeats")
	defer scope.End()

	tripID := chi.URLParam(r, constant.RequestParamTripID)

	res, err := handler.service.ListSeats(ctx, tripID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
