package payment

import (
	"net/http"

	"syncguard/infras/otel"
	"syncguard/internal/domains/payment/model/dto"
	"syncguard/internal/domains/payment/service"
	"syncguard/shared/constant"
	"syncguard/shared/validator"
	"syncguard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/order", handler.CreateOrder)
		routerGroup.Post("/verify", handler.VerifyPayment)
	})
}

// CreateOrder opens a gateway order for a booking.
// @Summary Create a payment order
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.CreateOrderResponse] "Gateway order"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/order [post]
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment order created successfully")

	response.WithJSON(writer, http.StatusCreated, order)
}

// VerifyPayment verifies a gateway signature and records the payment.
// @Summary Verify a payment
// @Description Verify the gateway signature; on success record the payment on the booking and settle the listed folio items.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verify Payment Request"
// @Success 200 {object} response.Data[dto.VerifyResponse] "Payment recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/verify [post]
func (handler *Handler) VerifyPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment verified successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
