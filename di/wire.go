//go:build wireinject
// +build wireinject

package di

import (
	"syncguard/config"
	"syncguard/infras/gateway"
	"syncguard/infras/kafka"
	"syncguard/infras/otel"
	"syncguard/infras/pdf"
	"syncguard/infras/postgres"
	"syncguard/infras/redis"
	"syncguard/infras/s3"
	"syncguard/infras/vlm"
	"syncguard/shared/cache"
	"syncguard/transport/http"
	"syncguard/transport/http/middleware"
	"syncguard/transport/http/router"

	"github.com/google/wire"

	bookingEvent "syncguard/internal/domains/booking/event"
	bookingRepository "syncguard/internal/domains/booking/repository"
	bookingService "syncguard/internal/domains/booking/service"
	documentService "syncguard/internal/domains/document/service"
	guestRepository "syncguard/internal/domains/guest/repository"
	guestService "syncguard/internal/domains/guest/service"
	hotelRepository "syncguard/internal/domains/hotel/repository"
	hotelService "syncguard/internal/domains/hotel/service"
	notificationRepository "syncguard/internal/domains/notification/repository"
	notificationService "syncguard/internal/domains/notification/service"
	otaRepository "syncguard/internal/domains/ota/repository"
	otaService "syncguard/internal/domains/ota/service"
	paymentService "syncguard/internal/domains/payment/service"
	rateRulesRepository "syncguard/internal/domains/raterules/repository"
	rateRulesService "syncguard/internal/domains/raterules/service"
	roomTypeRepository "syncguard/internal/domains/roomtype/repository"
	roomTypeService "syncguard/internal/domains/roomtype/service"
	settingsRepository "syncguard/internal/domains/settings/repository"
	settingsService "syncguard/internal/domains/settings/service"
	statsService "syncguard/internal/domains/stats/service"

	bookingHandler "syncguard/internal/handlers/booking"
	documentHandler "syncguard/internal/handlers/document"
	guestHandler "syncguard/internal/handlers/guest"
	hotelHandler "syncguard/internal/handlers/hotel"
	notificationHandler "syncguard/internal/handlers/notification"
	otaHandler "syncguard/internal/handlers/ota"
	paymentHandler "syncguard/internal/handlers/payment"
	rateRulesHandler "syncguard/internal/handlers/raterules"
	roomTypeHandler "syncguard/internal/handlers/roomtype"
	settingsHandler "syncguard/internal/handlers/settings"
	statsHandler "syncguard/internal/handlers/stats"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	pdf.New,
	gateway.New,
	vlm.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var otaDomain = wire.NewSet(
	otaRepository.New,
	otaService.New,
)

var rateRulesDomain = wire.NewSet(
	rateRulesRepository.New,
	rateRulesService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var documentDomain = wire.NewSet(
	documentService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomTypeDomain,
	bookingDomain,
	guestDomain,
	settingsDomain,
	otaDomain,
	rateRulesDomain,
	notificationDomain,
	statsDomain,
	paymentDomain,
	documentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomTypeHandler.New,
	bookingHandler.New,
	guestHandler.New,
	settingsHandler.New,
	otaHandler.New,
	rateRulesHandler.New,
	notificationHandler.New,
	statsHandler.New,
	paymentHandler.New,
	documentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
