package handlers

import (
	"net/http"

	"github.com/medroute/hospital-finder/internal/application/services"
)

// HospitalHandler handles hospital detail requests
type HospitalHandler struct {
	hospitalService *services.HospitalService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(hospitalService *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.hospitalService.GetHospital(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, r, err, "failed to get hospital")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"hospital": hospital,
	})
}
