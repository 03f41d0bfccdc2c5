package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"veggiemap-server/middleware"
	"veggiemap-server/services"
	"veggiemap-server/utils/errors"
)

// StatusHandler exposes the latest refresh report and the generated map
// data file.
type StatusHandler struct {
	mu       sync.RWMutex
	report   *services.Report
	dataFile string
}

func NewStatusHandler(dataFile string) *StatusHandler {
	return &StatusHandler{dataFile: dataFile}
}

// SetReport stores the report of the latest refresh run.
func (h *StatusHandler) SetReport(report *services.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.report = report
}

func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	report := h.report
	h.mu.RUnlock()

	if report == nil {
		middleware.WriteError(w, errors.ErrNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetData serves the current map data file.
func (h *StatusHandler) GetData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	http.ServeFile(w, r, h.dataFile)
}
