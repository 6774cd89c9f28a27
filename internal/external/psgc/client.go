package psgc

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/failure"
)

const (
	defaultTimeoutSeconds = 10

	otelAttrCode     = "psgc.code"
	otelAttrEndpoint = "psgc.endpoint"
)

// Place is a PSGC record. The API returns more fields but only the
// code and name are kept.
type Place struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Client interface {
	Municipalities(ctx context.Context) ([]Place, error)
	Barangays(ctx context.Context, code string) ([]Place, error)
}

type clientImpl struct {
	baseURL      string
	provinceCode string
	httpClient   *http.Client
	otel         otel.Otel
	collator     *collate.Collator
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := cfg.External.PSGC.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		baseURL:      cfg.External.PSGC.BaseURL,
		provinceCode: cfg.External.PSGC.ProvinceCode,
		httpClient:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		otel:         otel,
		collator:     collate.New(language.English, collate.IgnoreCase),
	}
}

// Municipalities fetches the municipalities and component cities of the
// configured province and returns them merged, sorted by name. The PSGC
// lists cities separately from municipalities, so both are fetched.
func (c *clientImpl) Municipalities(ctx context.Context) (places []Place, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".psgc.Municipalities")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrCode, c.provinceCode)

	var municipalities, cities []Place

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		endpoint := fmt.Sprintf("%s/provinces/%s/municipalities/", c.baseURL, c.provinceCode)

		return c.fetch(groupCtx, endpoint, &municipalities)
	})

	group.Go(func() error {
		endpoint := fmt.Sprintf("%s/provinces/%s/cities/", c.baseURL, c.provinceCode)

		return c.fetch(groupCtx, endpoint, &cities)
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("province", c.provinceCode).Msg("failed to fetch municipalities from PSGC")

		return nil, err
	}

	places = append(places, municipalities...)
	places = append(places, cities...)

	c.sortByName(places)

	return places, nil
}

// Barangays fetches the barangays of a municipality. Component cities
// live under a different PSGC resource, so a failed municipality lookup
// retries the same code against the cities endpoint.
func (c *clientImpl) Barangays(ctx context.Context, code string) (places []Place, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".psgc.Barangays")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrCode, code)

	endpoint := fmt.Sprintf("%s/municipalities/%s/barangays/", c.baseURL, code)

	err = c.fetch(ctx, endpoint, &places)
	if err != nil {
		log.Warn().Str("code", code).Msg("municipality barangay lookup failed, retrying as city")

		endpoint = fmt.Sprintf("%s/cities/%s/barangays/", c.baseURL, code)

		if err = c.fetch(ctx, endpoint, &places); err != nil {
			log.Error().Err(err).Str("code", code).Msg("failed to fetch barangays from PSGC")

			return nil, err
		}
	}

	c.sortByName(places)

	return places, nil
}

func (c *clientImpl) fetch(ctx context.Context, endpoint string, target *[]Place) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".psgc.fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrEndpoint, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build PSGC request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return failure.BadGateway(fmt.Sprintf("PSGC request failed: %v", err)) //nolint:wrapcheck
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return failure.BadGateway(fmt.Sprintf("PSGC returned status %d", res.StatusCode)) //nolint:wrapcheck
	}

	if err = json.NewDecoder(res.Body).Decode(target); err != nil {
		return failure.BadGateway(fmt.Sprintf("failed to decode PSGC response: %v", err)) //nolint:wrapcheck
	}

	return nil
}

func (c *clientImpl) sortByName(places []Place) {
	slices.SortFunc(places, func(a, b Place) int {
		return c.collator.CompareString(a.Name, b.Name)
	})
}
