//go:build !integration

package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	require.NotNil(t, server)
	require.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadHeaderTimeout)
	assert.Equal(t, 45*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_Run(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		cancelAfter time.Duration
		expectError bool
	}{
		{
			name:        "graceful shutdown on context cancel",
			port:        "0",
			cancelAfter: 50 * time.Millisecond,
		},
		{
			name:        "listen error",
			port:        "invalid-port",
			cancelAfter: 2 * time.Second,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), tt.port)

			ctx, cancel := context.WithTimeout(context.Background(), tt.cancelAfter)
			defer cancel()

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Run(ctx)
			}()

			select {
			case err := <-errChan:
				if tt.expectError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(3 * time.Second):
				t.Fatal("server did not stop in time")
			}
		})
	}
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(okHandler(), "0")
	assert.NoError(t, server.Shutdown())
}
