package router

import (
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

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel        hotel.Handler
	RoomType     roomtype.Handler
	Booking      booking.Handler
	Guest        guest.Handler
	Settings     settings.Handler
	OTA          ota.Handler
	RateRules    raterules.Handler
	Notification notification.Handler
	Stats        stats.Handler
	Payment      payment.Handler
	Document     document.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.OTA.Router(routerGroup)
		r.DomainHandlers.RateRules.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
