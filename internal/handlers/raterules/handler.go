package raterules

import (
	"net/http"

	"syncguard/infras/otel"
	"syncguard/internal/domains/raterules/model/dto"
	"syncguard/internal/domains/raterules/service"
	"syncguard/shared/constant"
	"syncguard/shared/validator"
	"syncguard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RateRules
	otel    otel.Otel
}

func New(service service.RateRules, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRateRules)
		routerGroup.Put("/", handler.UpdateRateRules)
		routerGroup.Get("/quote", handler.Quote)
	})
}

// GetRateRules retrieves the pricing rule set.
// @Summary Get rate rules
// @Tags RateRules
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RateRulesResponse] "Rate rules"
// @Failure 500 {object} response.Error
// @Router /v1/rules [get]
func (handler *Handler) GetRateRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRateRules")
	defer scope.End()

	rules, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// UpdateRateRules updates the pricing rule set.
// @Summary Update rate rules
// @Description Update weekday adjustments and special events. Omitted sections are left untouched.
// @Tags RateRules
// @Accept json
// @Produce json
// @Param request body dto.UpdateRateRulesRequest true "Update Rate Rules Request"
// @Success 200 {object} response.Message "Rate rules updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules [put]
func (handler *Handler) UpdateRateRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRateRules")
	defer scope.End()

	req := dto.UpdateRateRulesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate rules updated successfully")

	response.WithMessage(w, http.StatusOK, "Rate rules updated successfully")
}

// Quote prices one night for a room type on a date.
// @Summary Quote a nightly rate
// @Description Apply the matching special event or weekday rule to the room type's base price, clamped to its floor and ceiling.
// @Tags RateRules
// @Accept json
// @Produce json
// @Param room_type_id query string true "Room Type ID"
// @Param date query string true "Stay date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Nightly quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules/quote [get]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	query := r.URL.Query()

	quote, err := handler.service.Quote(ctx, query.Get("room_type_id"), query.Get("date"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote nightly rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}
