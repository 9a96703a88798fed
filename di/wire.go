//go:build wireinject
// +build wireinject

package di

import (
	"holipass/config"
	"holipass/infras/jwt"
	"holipass/infras/mailer"
	"holipass/infras/mongo"
	"holipass/infras/otel"
	"holipass/infras/payment"
	"holipass/infras/redis"
	"holipass/infras/sheets"
	"holipass/internal/ticket"
	"holipass/shared/cache"
	"holipass/transport/http"
	"holipass/transport/http/middleware"
	"holipass/transport/http/router"

	bookingStore "holipass/internal/domains/booking/store"
	contentStore "holipass/internal/domains/content/store"

	bookingRepository "holipass/internal/domains/booking/repository"
	contentRepository "holipass/internal/domains/content/repository"

	authService "holipass/internal/domains/auth/service"
	bookingService "holipass/internal/domains/booking/service"

	authHandler "holipass/internal/handlers/auth"
	bookingHandler "holipass/internal/handlers/booking"
	contentHandler "holipass/internal/handlers/content"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	mongo.New,
	sheets.New,
	redis.New,
	jwt.New,
	payment.New,
	mailer.New,
	ticket.NewRenderer,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingStore.NewDocumentStore,
	bookingStore.NewSheetStore,
	bookingStore.NewCacheStore,
	bookingRepository.New,
	bookingService.New,
)

var contentDomain = wire.NewSet(
	contentStore.NewDocumentStore,
	contentStore.NewFileStore,
	provideContentTTL,
	contentRepository.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contentDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contentHandler.New,
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
