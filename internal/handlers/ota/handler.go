package ota

import (
	"net/http"

	"syncguard/infras/otel"
	"syncguard/internal/domains/ota/model"
	"syncguard/internal/domains/ota/model/dto"
	"syncguard/internal/domains/ota/service"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/validator"
	"syncguard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OTA
	otel    otel.Otel
}

func New(service service.OTA, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/connections", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateConnection)
		routerGroup.Get("/", handler.GetConnections)
		routerGroup.Get("/{id}", handler.GetConnectionByID)
		routerGroup.Put("/{id}", handler.UpdateConnection)
		routerGroup.Put("/{id}/stop", handler.StopConnection)
		routerGroup.Put("/{id}/resume", handler.ResumeConnection)
		routerGroup.Delete("/{id}", handler.DeleteConnection)
	})
}

// CreateConnection registers a channel connection.
// @Summary Create an OTA connection
// @Tags OTA
// @Accept json
// @Produce json
// @Param request body dto.CreateOTAConnectionRequest true "Create Connection Request"
// @Success 201 {object} response.Message "Connection created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections [post]
func (handler *Handler) CreateConnection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConnection")
	defer scope.End()

	req := dto.CreateOTAConnectionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create OTA connection")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("OTA connection created successfully")

	response.WithMessage(writer, http.StatusCreated, "Connection created successfully")
}

// GetConnections retrieves channel connections with optional filters.
// @Summary Get all OTA connections
// @Tags OTA
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by connection status"
// @Success 200 {object} response.Data[dto.GetOTAConnectionsResponse] "List of connections"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections [get]
func (handler *Handler) GetConnections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnections")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	connections, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get OTA connections")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA connections retrieved successfully")

	response.WithJSON(w, http.StatusOK, connections)
}

// GetConnectionByID retrieves a channel connection by its ID.
// @Summary Get an OTA connection by ID
// @Tags OTA
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Data[dto.OTAConnectionResponse] "Connection details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [get]
func (handler *Handler) GetConnectionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnectionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	connection, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get OTA connection by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, connection)
}

// UpdateConnection updates a channel connection's fields.
// @Summary Update an OTA connection
// @Tags OTA
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body dto.UpdateOTAConnectionRequest true "Update Connection Request"
// @Success 200 {object} response.Message "Connection updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [put]
func (handler *Handler) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateOTAConnectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update OTA connection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA connection updated successfully")

	response.WithMessage(w, http.StatusOK, "Connection updated successfully")
}

// StopConnection pauses sync on a channel connection.
// @Summary Stop sync on an OTA connection
// @Tags OTA
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Message "Connection stopped"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id}/stop [put]
func (handler *Handler) StopConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StopConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetStopped(ctx, id, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to stop OTA connection")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Connection stopped")
}

// ResumeConnection resumes sync on a channel connection.
// @Summary Resume sync on an OTA connection
// @Tags OTA
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Message "Connection resumed"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id}/resume [put]
func (handler *Handler) ResumeConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResumeConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetStopped(ctx, id, false); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resume OTA connection")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Connection resumed")
}

// DeleteConnection removes a channel connection permanently.
// @Summary Delete an OTA connection
// @Tags OTA
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Message "Connection deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [delete]
func (handler *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete OTA connection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA connection deleted successfully")

	response.WithMessage(w, http.StatusOK, "Connection deleted successfully")
}
