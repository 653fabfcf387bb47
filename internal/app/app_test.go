package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rt-portal-go/internal/config"
	"rt-portal-go/pkg/clock"
	"rt-portal-go/pkg/logger"
)

func testConfig(seedEnabled bool) config.Config {
	return config.Config{
		HTTP: config.HTTPConfig{
			Port:              "0",
			CORSOrigins:       []string{"http://localhost:5173"},
			ReadHeaderTimeout: time.Second,
			RequestTimeout:    5 * time.Second,
		},
		Portal: config.PortalConfig{Timezone: "Asia/Jakarta", Locale: "id"},
		Seed:   config.SeedConfig{Enabled: seedEnabled},
	}
}

func TestNewWithConfigAppliesSeed(t *testing.T) {
	clk := clock.Fixed(time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC))
	application, err := NewWithConfig(context.Background(), testConfig(true), clk, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ":0", application.HTTPServer().Addr)
	assert.Equal(t, time.Second, application.HTTPServer().ReadHeaderTimeout)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Balance        int64  `json:"balance"`
		BalanceDisplay string `json:"balance_display"`
		News           []any  `json:"news"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(415000), body.Balance)
	assert.Equal(t, "Rp 415.000", body.BalanceDisplay)
	assert.Len(t, body.News, 2)
}

func TestNewWithConfigWithoutSeed(t *testing.T) {
	clk := clock.Fixed(time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC))
	application, err := NewWithConfig(context.Background(), testConfig(false), clk, logger.NewNop())
	require.NoError(t, err)

	residents, err := application.Services().Residents.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, residents)
}

func TestNewWithConfigMissingSeedFile(t *testing.T) {
	cfg := testConfig(true)
	cfg.Seed.File = t.TempDir() + "/missing.yaml"

	_, err := NewWithConfig(context.Background(), cfg, clock.Fixed(time.Now()), logger.NewNop())
	assert.Error(t, err)
}
