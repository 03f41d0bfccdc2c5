package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"veggiemap-server/middleware"
	"veggiemap-server/models"
	"veggiemap-server/services"
	"veggiemap-server/utils/errors"
)

type POIHandler struct {
	geoService *services.GeoService
}

type NearbyPOIResponse struct {
	NearbyPOIs []models.Marker `json:"nearby_pois"`
	Count      int             `json:"count"`
	Lat        float64         `json:"lat"`
	Lon        float64         `json:"lon"`
	Radius     float64         `json:"radius"`
}

func NewPOIHandler(geoService *services.GeoService) *POIHandler {
	return &POIHandler{geoService: geoService}
}

func (h *POIHandler) GetNearbyPOIs(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	radius, err := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	category := models.DietCategory(r.URL.Query().Get("category"))

	markers, err := h.geoService.FindNearbyMarkers(r.Context(), lat, lon, radius, category)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Create response object
	response := NearbyPOIResponse{
		NearbyPOIs: markers,
		Count:      len(markers),
		Lat:        lat,
		Lon:        lon,
		Radius:     radius,
	}
	json.NewEncoder(w).Encode(response)
}
