// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"syncguard/config"
	"syncguard/infras/gateway"
	"syncguard/infras/kafka"
	"syncguard/infras/otel"
	"syncguard/infras/pdf"
	"syncguard/infras/postgres"
	"syncguard/infras/redis"
	"syncguard/infras/s3"
	"syncguard/infras/vlm"
	"syncguard/internal/domains/booking/event"
	repository3 "syncguard/internal/domains/booking/repository"
	service6 "syncguard/internal/domains/booking/service"
	service11 "syncguard/internal/domains/document/service"
	repository5 "syncguard/internal/domains/guest/repository"
	service3 "syncguard/internal/domains/guest/service"
	"syncguard/internal/domains/hotel/repository"
	"syncguard/internal/domains/hotel/service"
	repository6 "syncguard/internal/domains/notification/repository"
	service4 "syncguard/internal/domains/notification/service"
	repository7 "syncguard/internal/domains/ota/repository"
	service7 "syncguard/internal/domains/ota/service"
	service10 "syncguard/internal/domains/payment/service"
	repository8 "syncguard/internal/domains/raterules/repository"
	service8 "syncguard/internal/domains/raterules/service"
	repository2 "syncguard/internal/domains/roomtype/repository"
	service2 "syncguard/internal/domains/roomtype/service"
	repository4 "syncguard/internal/domains/settings/repository"
	service5 "syncguard/internal/domains/settings/service"
	service9 "syncguard/internal/domains/stats/service"
	"syncguard/internal/handlers/booking"
	"syncguard/internal/handlers/document"
	"syncguard/internal/handlers/guest"
	"syncguard/internal/handlers/hotel"
	"syncguard/internal/handlers/notification"
	"syncguard/internal/handlers/ota"
	"syncguard/internal/handlers/payment"
	"syncguard/internal/handlers/raterules"
	"syncguard/internal/handlers/roomtype"
	"syncguard/internal/handlers/settings"
	"syncguard/internal/handlers/stats"
	"syncguard/shared/cache"
	"syncguard/transport/http"
	"syncguard/transport/http/middleware"
	"syncguard/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryHotel := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceHotel := service.New(repositoryHotel, configConfig, redisCache, otelOtel)
	handler := hotel.New(serviceHotel, otelOtel)
	roomType := repository2.New(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	serviceRoomType := service2.New(roomType, repositoryBooking, configConfig, redisCache, otelOtel)
	roomtypeHandler := roomtype.New(serviceRoomType, otelOtel)
	repositorySettings := repository4.New(connection, otelOtel)
	repositoryGuest := repository5.New(connection, otelOtel)
	serviceGuest := service3.New(repositoryGuest, configConfig, redisCache, otelOtel)
	repositoryNotification := repository6.New(connection, otelOtel)
	serviceNotification := service4.New(repositoryNotification, otelOtel)
	serviceSettings := service5.New(repositorySettings, configConfig, redisCache, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := event.New(kafkaClient, configConfig, otelOtel)
	generator := pdf.New(otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceBooking := service6.New(repositoryBooking, roomType, repositorySettings, serviceGuest, serviceNotification, serviceSettings, publisher, generator, s3S3, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	settingsHandler := settings.New(serviceSettings, otelOtel)
	repositoryOTA := repository7.New(connection, otelOtel)
	serviceOTA := service7.New(repositoryOTA, otelOtel)
	otaHandler := ota.New(serviceOTA, otelOtel)
	rateRules := repository8.New(connection, otelOtel)
	serviceRateRules := service8.New(rateRules, roomType, otelOtel)
	raterulesHandler := raterules.New(serviceRateRules, otelOtel)
	notificationHandler := notification.New(serviceNotification, otelOtel)
	serviceStats := service9.New(repositoryBooking, configConfig, redisCache, otelOtel)
	statsHandler := stats.New(serviceStats, otelOtel)
	gatewayGateway := gateway.New(configConfig, otelOtel)
	servicePayment := service10.New(gatewayGateway, repositoryBooking, serviceNotification, redisCache, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	vlmClient := vlm.New(configConfig, otelOtel)
	serviceDocument := service11.New(vlmClient, otelOtel)
	documentHandler := document.New(serviceDocument, otelOtel)
	domainHandlers := router.DomainHandlers{
		Hotel:        handler,
		RoomType:     roomtypeHandler,
		Booking:      bookingHandler,
		Guest:        guestHandler,
		Settings:     settingsHandler,
		OTA:          otaHandler,
		RateRules:    raterulesHandler,
		Notification: notificationHandler,
		Stats:        statsHandler,
		Payment:      paymentHandler,
		Document:     documentHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, s3.New, kafka.New, pdf.New, gateway.New, vlm.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var hotelDomain = wire.NewSet(repository.New, service.New)

var roomTypeDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, event.New, service6.New)

var guestDomain = wire.NewSet(repository5.New, service3.New)

var settingsDomain = wire.NewSet(repository4.New, service5.New)

var otaDomain = wire.NewSet(repository7.New, service7.New)

var rateRulesDomain = wire.NewSet(repository8.New, service8.New)

var notificationDomain = wire.NewSet(repository6.New, service4.New)

var statsDomain = wire.NewSet(service9.New)

var paymentDomain = wire.NewSet(service10.New)

var documentDomain = wire.NewSet(service11.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), hotel.New, roomtype.New, booking.New, guest.New, settings.New, ota.New, raterules.New, notification.New, stats.New, payment.New, document.New, router.New)
