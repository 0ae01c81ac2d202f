package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// GetSubmission returns one submission in full: the checklist payload, the
// joined display fields, and the ordered photo list.
func GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Submission not found")
		return
	}

	var submission models.Submission
	err = config.DB.
		Preload("Location").Preload("Subcontractor").Preload("IVR").Preload("Checklist").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("upload_date, id") }).
		Where("id = ?", id).
		First(&submission).Error
	if err != nil {
		respondError(w, http.StatusNotFound, "Submission not found")
		return
	}

	respondJSON(w, http.StatusOK, submission)
}
