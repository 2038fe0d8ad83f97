package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dispenses/o-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "trace-1", r.Header.Get("X-Request-Id"))
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	c := NewHTTPClient()
	headers := http.Header{}
	headers.Set("X-Request-Id", "trace-1")

	code, body, respHeaders, err := c.Get(context.Background(), srv.URL+"/api/dispenses/o-1", headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "slow down", string(body))
	assert.Equal(t, "3", respHeaders.Get("Retry-After"))
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, _, err := NewHTTPClientWith(srv.Client()).Get(ctx, srv.URL, nil)
	assert.Error(t, err)
}

func TestHTTPClient_GetBadURL(t *testing.T) {
	_, _, _, err := NewHTTPClient().Get(context.Background(), "://bad", nil)
	assert.Error(t, err)
}
