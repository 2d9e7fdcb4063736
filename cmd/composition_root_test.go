package cmd_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordering/cmd"
	"ordering/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_MemoryStorage(t *testing.T) {
	cfg, err := cmd.LoadConfigFrom()
	require.NoError(t, err)
	cfg.StaleOrders.TTL = time.Hour

	app, err := cmd.NewCompositionRoot(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, app.Close()) })

	router, err := app.CreateRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"orderLines":[{"productId":"PROD-001","quantity":1,"unitPrice":10}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+placed.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	jm := app.CreateJobManager()
	assert.Equal(t, 1, jm.Len())

	canceled, err := app.CreateCancelStalePendingOrdersCommandHandler().Handle(context.Background(), mustStaleCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 1, canceled)
}

func mustStaleCommand(t *testing.T) commands.CancelStalePendingOrdersCommand {
	t.Helper()

	command, err := commands.NewCancelStalePendingOrdersCommand(time.Minute, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return command
}
