// internal/common/http/client_test.go
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["prompt"]})
	}))
	defer server.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := NewClient(time.Second).PostJSON(context.Background(), server.URL,
		map[string]string{"Authorization": "Bearer k"}, map[string]string{"prompt": "hi"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "hi", out.Echo)
}

func TestClient_PostJSON_Errors(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		err := NewClient(time.Second).PostJSON(context.Background(), server.URL, nil, struct{}{}, nil)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		assert.Equal(t, "upstream down", statusErr.Body)
	})

	t.Run("undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		var out map[string]interface{}
		err := NewClient(time.Second).PostJSON(context.Background(), server.URL, nil, struct{}{}, &out)
		assert.ErrorContains(t, err, "decode response")
	})

	t.Run("cancelled", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		defer server.Close()
		defer server.CloseClientConnections()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := NewClient(time.Second).PostJSON(ctx, server.URL, nil, struct{}{}, nil)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
