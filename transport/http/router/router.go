package router

import (
	"github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/accommodation"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/auth"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/geo"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/handlers/review"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Accommodation accommodation.Handler
	Review        review.Handler
	Geo           geo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Geo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
