package geo

import (
	"net/http"

	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/external/psgc"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves the geographic lookups straight from the PSGC client.
// There is no service in between, the client already owns sorting and
// the city fallback.
type Handler struct {
	geo  psgc.Client
	otel otel.Otel
}

func New(geo psgc.Client, otel otel.Otel) Handler {
	return Handler{
		geo:  geo,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/geo", func(routerGroup chi.Router) {
		routerGroup.Get("/municipalities", handler.GetMunicipalities)
		routerGroup.Get("/municipalities/{code}/barangays", handler.GetBarangays)
	})
}

// GetMunicipalities retrieves the province's municipalities and cities.
// @Summary Get municipalities
// @Description Retrieve the merged, name sorted list of municipalities and component cities of the province.
// @Tags Geo
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]psgc.Place] "Municipalities and cities"
// @Failure 502 {object} response.Error
// @Router /v1/geo/municipalities [get]
func (handler *Handler) GetMunicipalities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMunicipalities")
	defer scope.End()

	municipalities, err := handler.geo.Municipalities(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get municipalities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Municipalities retrieved successfully")

	response.WithJSON(w, http.StatusOK, municipalities)
}

// GetBarangays retrieves the barangays of a municipality or city.
// @Summary Get barangays
// @Description Retrieve the name sorted barangays of a municipality, falling back to the city endpoint.
// @Tags Geo
// @Accept json
// @Produce json
// @Param code path string true "Municipality or city PSGC code"
// @Success 200 {object} response.Data[[]psgc.Place] "Barangays"
// @Failure 502 {object} response.Error
// @Router /v1/geo/municipalities/{code}/barangays [get]
func (handler *Handler) GetBarangays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBarangays")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	barangays, err := handler.geo.Barangays(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get barangays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Barangays retrieved successfully")

	response.WithJSON(w, http.StatusOK, barangays)
}
