package document

import (
	"net/http"

	"syncguard/infras/otel"
	"syncguard/internal/domains/document/model/dto"
	"syncguard/internal/domains/document/service"
	"syncguard/shared/constant"
	"syncguard/shared/validator"
	"syncguard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/scan", handler.ScanDocument)
		routerGroup.Post("/email", handler.ParseEmail)
	})
}

// ScanDocument extracts guest details from an identity document image.
// @Summary Scan an identity document
// @Description Extract guest fields from one or two base64 encoded document images via the vision model.
// @Tags Document
// @Accept json
// @Produce json
// @Param request body dto.ScanRequest true "Scan Request"
// @Success 200 {object} response.Data[dto.ScanResponse] "Extracted guest details"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/scan [post]
func (handler *Handler) ScanDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ScanDocument")
	defer scope.End()

	req := dto.ScanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Scan(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to scan identity document")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Identity document scanned successfully")

	response.WithJSON(writer, http.StatusOK, result)
}

// ParseEmail extracts a booking draft from an OTA confirmation email.
// @Summary Parse an OTA confirmation email
// @Description Extract a booking draft from the email subject and body via the vision model.
// @Tags Document
// @Accept json
// @Produce json
// @Param request body dto.ParseEmailRequest true "Parse Email Request"
// @Success 200 {object} response.Data[dto.ParseEmailResponse] "Extracted booking draft"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/email [post]
func (handler *Handler) ParseEmail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ParseEmail")
	defer scope.End()

	req := dto.ParseEmailRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.ParseEmail(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking email")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking email parsed successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
