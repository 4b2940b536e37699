package probe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestProbe(url string) *Probe {
	logger := log.New()
	logger.Out = io.Discard

	// plain client so failure cases don't sit through retry backoff
	return &Probe{
		httpClient: http.DefaultClient,
		url:        url,
		logger:     logger,
	}
}

func TestProbe_Check(t *testing.T) {

	t.Run("ok", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Expected method
			assert.Equal(t, http.MethodHead, r.Method)

			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		result := newTestProbe(ts.URL).Check(context.Background())
		assert.True(t, result.Reachable)
		assert.NotZero(t, result.Latency)
		assert.False(t, result.CheckedAt.IsZero())
	})

	t.Run("client error still counts as reachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		result := newTestProbe(ts.URL).Check(context.Background())
		assert.True(t, result.Reachable)
	})

	t.Run("transport error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close() // refuse connections

		result := newTestProbe(ts.URL).Check(context.Background())
		assert.False(t, result.Reachable)
		assert.Zero(t, result.Latency)
	})
}
