package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// GetIVRs returns every inspection window with its location, newest first.
func GetIVRs(w http.ResponseWriter, r *http.Request) {
	var windows []models.InspectionWindow
	err := config.DB.
		Preload("Location").
		Order("start_date DESC").
		Find(&windows).Error
	if err != nil {
		config.Log.Error("IVRs query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, windows)
}
