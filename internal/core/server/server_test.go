package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frete-service/internal/core/config"
	"frete-service/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestServer_RequestID verifies that every response carries a request id header.
func TestServer_RequestID(t *testing.T) {
	srv := New(&config.AppConfig{ServerPort: 8080})
	srv.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

// TestServer_NotFoundIsJSON verifies the error handler output for unknown routes.
func TestServer_NotFoundIsJSON(t *testing.T) {
	srv := New(&config.AppConfig{ServerPort: 8080})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["ray_id"])
}

// TestServer_RecoversPanics verifies that a panicking handler yields a 500.
func TestServer_RecoversPanics(t *testing.T) {
	srv := New(&config.AppConfig{ServerPort: 8080})
	srv.App.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// TestServer_Run_Error verifies that Run returns an error when the port is already taken.
func TestServer_Run_Error(t *testing.T) {
	logger.Init("development", "error")

	first := New(&config.AppConfig{ServerPort: 18089})
	go first.Run()
	defer first.Shutdown()
	time.Sleep(100 * time.Millisecond)

	second := New(&config.AppConfig{ServerPort: 18089})
	errCh := make(chan error, 1)
	go func() {
		errCh <- second.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(time.Second):
		second.Shutdown()
		t.Log("Second server unexpectedly started")
	}
}
