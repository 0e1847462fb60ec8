package stats

import (
	"net/http"

	"syncguard/infras/otel"
	"syncguard/internal/domains/stats/service"
	"syncguard/shared/constant"
	"syncguard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/statistics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStatistics)
	})
}

// GetStatistics aggregates revenue, channel and trend figures over non-cancelled bookings.
// @Summary Get property statistics
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Aggregated statistics"
// @Failure 500 {object} response.Error
// @Router /v1/statistics [get]
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	statistics, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get statistics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Statistics retrieved successfully")

	response.WithJSON(w, http.StatusOK, statistics)
}
