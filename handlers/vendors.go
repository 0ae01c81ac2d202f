package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// GetVendors returns active subcontractors, each with the active locations
// assigned to them nested inline for the vendor management view.
func GetVendors(w http.ResponseWriter, r *http.Request) {
	var vendors []models.Subcontractor
	err := config.DB.
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("name")
		}).
		Where("is_active = ?", true).
		Order("name").
		Find(&vendors).Error
	if err != nil {
		config.Log.Error("Vendors query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, vendors)
}
