package audit

import (
	"busline/infras/otel"
	"busline/internal/domains/audit/model"
	"busline/internal/domains/audit/service"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/audits", func(r chi.Router) {
		r.Get("/", handler.GetAudits)
	})
}

// GetAudits lists archived rows with who deleted them and when.
func (handler *Handler) GetAudits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAudits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if table := r.URL.Query().Get(model.FieldTable); table != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTable,
			Operator: gDto.FilterOperatorEq,
			Value:    table,
			Table:    model.TableName,
		})
	}

	if deletedBy := r.URL.Query().Get(model.FieldDeletedBy); deletedBy != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDeletedBy,
			Operator: gDto.FilterOperatorEq,
			Value:    deletedBy,
			Table:    model.TableName,
		})
	}

	audits, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audits")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, audits)
}
