package router

import (
	"holipass/internal/handlers/auth"
	"holipass/internal/handlers/booking"
	"holipass/internal/handlers/content"
	"holipass/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Content content.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	limiter := r.AppMiddleware.RateLimit()

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup, limiter)
		r.DomainHandlers.Booking.Router(routerGroup, r.AuthMiddleware, limiter)
		r.DomainHandlers.Content.Router(routerGroup, r.AuthMiddleware)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
		AppMiddleware:  appMiddleware,
	}
}
