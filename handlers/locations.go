package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// GetLocations returns the flat active-location list with joined display
// names. Every authenticated manager sees every location.
func GetLocations(w http.ResponseWriter, r *http.Request) {
	var locations []models.Location
	err := config.DB.
		Preload("Subcontractor").Preload("AccountManager").Preload("Checklist").
		Where("is_active = ?", true).
		Order("name").
		Find(&locations).Error
	if err != nil {
		config.Log.Error("Locations query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, locations)
}
