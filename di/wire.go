//go:build wireinject
// +build wireinject

package di

import (
	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/jwt"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/kafka"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/postgres"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/redis"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/s3"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/events"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/external/psgc"
	accommodationHandler "github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/accommodation"
	geoHandler "github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/geo"
	reviewHandler "github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/review"
	"github.com/git-nard/wanderer-albay-guide-remake/permissions"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/cache"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http/middleware"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http/router"

	accommodationRepository "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/repository"
	accommodationService "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/service"
	reviewRepository "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/repository"
	reviewService "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/service"

	"github.com/google/wire"

	authService "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/auth/service"
	userRepository "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/user/repository"
	authHandler "github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/auth"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var externals = wire.NewSet(
	psgc.New,
	events.New,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	accommodationDomain,
	reviewDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	accommodationHandler.New,
	reviewHandler.New,
	geoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		externals,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
