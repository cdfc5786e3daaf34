package getStats

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalSummit/internal/http-server/handlers/admin/getStats/mocks"
	"dentalSummit/internal/lib/logger/handlers/slogdiscard"
	"dentalSummit/internal/models"
)

func TestGetStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		stats := &models.AdminStats{
			TotalRegistrations:   40,
			PaidRegistrations:    25,
			PendingRegistrations: 15,
			Revenue:              14975,
			ConversionRate:       62.5,
			Recent: []models.Registration{
				{ID: "reg40", ConfirmationNumber: "DS-2026-9B01EE"},
			},
		}

		store := mocks.NewStatsGetter(t)
		store.On("GetStats", recentLimit).Return(stats, nil)

		handler := New(logger, store)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		require.NotNil(t, resp.Stats)
		assert.Equal(t, 40, resp.Stats.TotalRegistrations)
		assert.Equal(t, 25, resp.Stats.PaidRegistrations)
		assert.Equal(t, 14975, resp.Stats.Revenue)
		assert.InDelta(t, 62.5, resp.Stats.ConversionRate, 0.001)
		require.Len(t, resp.Stats.Recent, 1)
		assert.Equal(t, "reg40", resp.Stats.Recent[0].ID)
	})

	t.Run("Store failure", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewStatsGetter(t)
		store.On("GetStats", recentLimit).Return(nil, errors.New("database error"))

		handler := New(logger, store)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get stats"}`, rr.Body.String())
	})
}
