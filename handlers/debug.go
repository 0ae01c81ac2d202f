package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// Debug dumps the raw tables for development. Password hashes are excluded;
// the endpoint still sits behind the bearer-token gate.
func Debug(w http.ResponseWriter, r *http.Request) {
	db := config.DB

	var (
		checklists     []models.ChecklistTemplate
		managers       []models.AccountManager
		subcontractors []models.Subcontractor
		locations      []models.Location
		windows        []models.InspectionWindow
		submissions    []models.Submission
		photos         []models.Photo
	)

	queries := []error{
		db.Order("id").Find(&checklists).Error,
		db.Omit("password_hash").Order("email").Find(&managers).Error,
		db.Order("name").Find(&subcontractors).Error,
		db.Order("id").Find(&locations).Error,
		db.Order("start_date DESC").Find(&windows).Error,
		db.Order("submitted_at DESC").Limit(20).Find(&submissions).Error,
		db.Order("upload_date DESC").Limit(50).Find(&photos).Error,
	}
	for _, err := range queries {
		if err != nil {
			config.Log.Error("Debug dump query failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"checklists":       checklists,
		"account_managers": managers,
		"subcontractors":   subcontractors,
		"locations":        locations,
		"ivrs":             windows,
		"submissions":      submissions,
		"photos":           photos,
	})
}
