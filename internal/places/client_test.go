package places

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

func newClientForServer(server *httptest.Server) *Client {
	client := NewClient(&config.Config{
		GooglePlacesAPIKey:  "places-key",
		ExternalCallTimeout: 2 * time.Second,
	})
	client.baseURL = server.URL
	return client
}

func TestClient_Autocomplete_PassesThroughBody(t *testing.T) {
	upstream := `{"predictions":[{"description":"Pune, Maharashtra, India"}],"status":"OK"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autocomplete/json", r.URL.Path)
		assert.Equal(t, "Pun", r.URL.Query().Get("input"))
		assert.Equal(t, "places-key", r.URL.Query().Get("key"))
		assert.Equal(t, "country:in", r.URL.Query().Get("components"))
		w.Write([]byte(upstream))
	}))
	defer server.Close()

	body, err := newClientForServer(server).Autocomplete(context.Background(), "Pun")

	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(body))
}

func TestClient_Details_PassesThroughBody(t *testing.T) {
	upstream := `{"result":{"name":"Pune"},"status":"OK"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("place_id"))
		w.Write([]byte(upstream))
	}))
	defer server.Close()

	body, err := newClientForServer(server).Details(context.Background(), "abc123")

	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(body))
}

func TestClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	body, err := newClientForServer(server).Autocomplete(context.Background(), "Pun")

	assert.Error(t, err)
	assert.Nil(t, body)
}
