package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veggiemap-server/models"
	"veggiemap-server/services"
)

func TestGetStatus(t *testing.T) {
	h := NewStatusHandler("unused")

	t.Run("no refresh yet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("latest report", func(t *testing.T) {
		h.SetReport(&services.Report{
			RunID:     "run-1",
			Timestamp: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			Server:    "https://lz4.overpass-api.de/api/interpreter",
			Markers:   2,
			Counts:    models.CategoryCounts{VeganOnly: 1, VegetarianFriendly: 1},
		})

		rec := httptest.NewRecorder()
		h.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var report services.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, "run-1", report.RunID)
		assert.Equal(t, 2, report.Markers)
		assert.Equal(t, 1, report.Counts.VeganOnly)
	})
}

func TestGetData(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "veggiemap-data.js")
	require.NoError(t, os.WriteFile(dataFile, []byte("function veggiemap_populate(markers) {}\n"), 0o644))

	h := NewStatusHandler(dataFile)
	rec := httptest.NewRecorder()
	h.GetData(rec, httptest.NewRequest(http.MethodGet, "/data/veggiemap-data.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "veggiemap_populate")
}
