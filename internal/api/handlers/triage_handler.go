package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medroute/hospital-finder/internal/application/services"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
	apperrors "github.com/medroute/hospital-finder/pkg/errors"
)

// TriageHandler handles symptom-based hospital search requests
type TriageHandler struct {
	hospitalService     *services.HospitalService
	maxResults          int
	emergencyMaxResults int
}

// NewTriageHandler creates a new triage handler
func NewTriageHandler(hospitalService *services.HospitalService, maxResults, emergencyMaxResults int) *TriageHandler {
	return &TriageHandler{
		hospitalService:     hospitalService,
		maxResults:          maxResults,
		emergencyMaxResults: emergencyMaxResults,
	}
}

type findHospitalsRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Symptoms  string   `json:"symptoms"`
	Language  string   `json:"language"`
	SessionID string   `json:"session_id"`
}

type emergencyHospitalsRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FindHospitals handles POST /api/find-hospitals
func (h *TriageHandler) FindHospitals(w http.ResponseWriter, r *http.Request) {
	var req findHospitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Latitude == nil || req.Longitude == nil || req.Symptoms == "" {
		respondWithError(w, http.StatusBadRequest, "latitude, longitude and symptoms are required")
		return
	}

	result, err := h.hospitalService.FindHospitals(r.Context(), services.FindHospitalsRequest{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Symptoms:  req.Symptoms,
		Language:  req.Language,
		SessionID: req.SessionID,
	})
	if err != nil {
		respondWithAppError(w, r, err, "failed to find hospitals")
		return
	}

	hospitals := result.Hospitals
	if len(hospitals) > h.maxResults {
		hospitals = hospitals[:h.maxResults]
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"analysis":  result.Analysis,
		"hospitals": hospitals,
	})
}

// EmergencyHospitals handles POST /api/emergency-hospitals
func (h *TriageHandler) EmergencyHospitals(w http.ResponseWriter, r *http.Request) {
	var req emergencyHospitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		respondWithError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	hospitals, err := h.hospitalService.FindEmergencyHospitals(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		respondWithAppError(w, r, err, "failed to find emergency hospitals")
		return
	}

	if len(hospitals) > h.emergencyMaxResults {
		hospitals = hospitals[:h.emergencyMaxResults]
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"hospitals": hospitals,
	})
}

// Helper functions shared by the handler package.
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func respondWithAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		}
	}
	observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
	respondWithError(w, http.StatusInternalServerError, fallback)
}
