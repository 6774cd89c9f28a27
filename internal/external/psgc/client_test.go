package psgc_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel/mocks"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/external/psgc"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/failure"
)

const provinceCode = "050500000"

func newClient(t *testing.T, handler http.Handler) psgc.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.PSGC.BaseURL = server.URL
	cfg.External.PSGC.ProvinceCode = provinceCode
	cfg.External.PSGC.TimeoutSeconds = 5

	return psgc.New(cfg, mocks.NewOtel())
}

func TestClient_Municipalities(t *testing.T) {
	t.Run("merges municipalities and cities sorted by name", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/provinces/"+provinceCode+"/municipalities/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"code":"050506000","name":"Daraga"},{"code":"050502000","name":"Camalig"}]`))
		})
		mux.HandleFunc("/provinces/"+provinceCode+"/cities/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"code":"050516000","name":"Legazpi City"},{"code":"050505000","name":"City of Ligao"}]`))
		})

		client := newClient(t, mux)

		places, err := client.Municipalities(context.Background())
		require.NoError(t, err)
		require.Len(t, places, 4)

		names := make([]string, len(places))
		for i, p := range places {
			names[i] = p.Name
		}

		assert.Equal(t, []string{"Camalig", "City of Ligao", "Daraga", "Legazpi City"}, names)
	})

	t.Run("empty province yields empty list", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		client := newClient(t, mux)

		places, err := client.Municipalities(context.Background())
		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("upstream failure surfaces as bad gateway", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/provinces/"+provinceCode+"/municipalities/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		mux.HandleFunc("/provinces/"+provinceCode+"/cities/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		client := newClient(t, mux)

		_, err := client.Municipalities(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})

	t.Run("malformed payload surfaces as bad gateway", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"}`))
		})

		client := newClient(t, mux)

		_, err := client.Municipalities(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestClient_Barangays(t *testing.T) {
	t.Run("fetches from municipality endpoint", func(t *testing.T) {
		var cityHit bool

		mux := http.NewServeMux()
		mux.HandleFunc("/municipalities/050506000/barangays/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"code":"050506002","name":"Bagumbayan"},{"code":"050506001","name":"Alcala"}]`))
		})
		mux.HandleFunc("/cities/", func(w http.ResponseWriter, r *http.Request) {
			cityHit = true
		})

		client := newClient(t, mux)

		places, err := client.Barangays(context.Background(), "050506000")
		require.NoError(t, err)
		require.Len(t, places, 2)

		assert.Equal(t, "Alcala", places[0].Name)
		assert.Equal(t, "Bagumbayan", places[1].Name)
		assert.False(t, cityHit, "city endpoint should not be hit when municipality lookup succeeds")
	})

	t.Run("falls back to city endpoint with the same code", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/municipalities/050516000/barangays/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		mux.HandleFunc("/cities/050516000/barangays/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"code":"050516001","name":"Bgy. 1 - Em's Barrio"}]`))
		})

		client := newClient(t, mux)

		places, err := client.Barangays(context.Background(), "050516000")
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "Bgy. 1 - Em's Barrio", places[0].Name)
	})

	t.Run("both endpoints failing surfaces as bad gateway", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		client := newClient(t, mux)

		_, err := client.Barangays(context.Background(), "059999000")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}
