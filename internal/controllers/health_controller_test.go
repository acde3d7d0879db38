package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daddeck/internal/models"
)

func TestHealth_ReturnsOK(t *testing.T) {
	env := newTestApi(t)
	env.collection.AddPacks([]*models.Pack{ownedPack(t, env, "bbq_dad_001", "bbq_dad_001", "curse_001")})
	env.wishlist.Add("lawn_dad_002")
	hc := NewHealthController(env.collection, env.wishlist)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(1), resp["packs"])
	assert.Equal(t, float64(3), resp["cards"])
	assert.Equal(t, float64(2), resp["unique_cards"])
	assert.Equal(t, float64(1), resp["wishlist_size"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	env := newTestApi(t)
	hc := NewHealthController(env.collection, env.wishlist)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_EmptyCollection(t *testing.T) {
	env := newTestApi(t)
	hc := NewHealthController(env.collection, env.wishlist)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["packs"])
	assert.Equal(t, float64(0), resp["cards"])
	assert.Equal(t, float64(0), resp["wishlist_size"])
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
