package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"synapse_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoderForServer(server *httptest.Server) *HTTPGeocoder {
	return NewHTTPGeocoder(&config.Config{
		GeocoderURL:         server.URL,
		GeocoderAPIKey:      "test-key",
		ExternalCallTimeout: 2 * time.Second,
	})
}

func TestHTTPGeocoder_TryGeocode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pune, India", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"geometry":{"lat":18.5204,"lng":73.8567}}]}`))
	}))
	defer server.Close()

	point, err := newGeocoderForServer(server).TryGeocode(context.Background(), "Pune, India")

	require.NoError(t, err)
	require.NotNil(t, point)
	assert.Equal(t, 73.8567, point.Longitude)
	assert.Equal(t, 18.5204, point.Latitude)
}

func TestHTTPGeocoder_TryGeocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	point, err := newGeocoderForServer(server).TryGeocode(context.Background(), "xyzzy")

	// No result is not an error; the caller keeps the default coordinates.
	assert.NoError(t, err)
	assert.Nil(t, point)
}

func TestHTTPGeocoder_TryGeocode_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	point, err := newGeocoderForServer(server).TryGeocode(context.Background(), "Pune")

	assert.Error(t, err)
	assert.Nil(t, point)
}
