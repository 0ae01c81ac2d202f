package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
	"github.com/jesse-projects/onsite-crash-champions/utils"
)

// GetChecklist serves the evergreen public link: location details, the
// current inspection window (null when no IVR covers today — the checklist
// stays fillable), and the checklist template. No authentication by design.
func GetChecklist(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationId"]

	var location models.Location
	err := config.DB.Preload("Checklist").Preload("Subcontractor").
		Where("id = ? AND is_active = ?", locationID, true).
		First(&location).Error
	if err != nil {
		respondError(w, http.StatusNotFound, "Location not found")
		return
	}

	if location.Checklist != nil {
		if err := location.Checklist.Config.Validate(); err != nil {
			config.Log.Warn("Checklist config failed validation",
				zap.String("checklist_id", location.ChecklistID), zap.Error(err))
		}
	}

	currentIVR, err := currentWindowForLocation(config.DB, locationID, time.Now())
	if err != nil {
		config.Log.Error("Failed to load inspection windows",
			zap.String("location_id", locationID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := map[string]interface{}{
		"location": map[string]string{
			"id":         location.ID,
			"name":       location.Name,
			"address":    location.Address,
			"city":       location.City,
			"state":      location.State,
			"zip":        location.Zip,
			"internalWo": location.InternalWO,
		},
		"ivr":       ivrSummary(currentIVR),
		"checklist": nil,
	}
	if location.Checklist != nil {
		resp["checklist"] = map[string]interface{}{
			"id":     location.Checklist.ID,
			"name":   location.Checklist.Name,
			"config": location.Checklist.Config,
		}
	}
	if location.Subcontractor != nil {
		resp["subcontractor"] = location.Subcontractor.Name
	}

	respondJSON(w, http.StatusOK, resp)
}

// SubmitChecklist records a completed checklist with its photo evidence.
// Validation runs fully before any persistence: photo count first, then the
// location, then per-file type and size. On success the submission row and
// all photo rows are written in one transaction; file bytes go to disk before
// the commit, and files orphaned by a rollback are logged, not fatal.
func SubmitChecklist(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationId"]

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var files = r.MultipartForm.File["photos"]
	if len(files) < minPhotos {
		respondError(w, http.StatusBadRequest, "Minimum 3 photos required")
		return
	}
	if len(files) > maxPhotos {
		respondError(w, http.StatusBadRequest, "Maximum 10 photos allowed")
		return
	}

	var location models.Location
	if err := config.DB.Where("id = ?", locationID).First(&location).Error; err != nil {
		respondError(w, http.StatusNotFound, "Location not found")
		return
	}

	if err := validatePhotos(files); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	checklistData := models.JSONMap{}
	raw := r.FormValue("checklistData")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "checklistData required")
		return
	}
	if err := json.Unmarshal([]byte(raw), &checklistData); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid checklist data")
		return
	}

	now := time.Now()
	currentIVR, err := currentWindowForLocation(config.DB, locationID, now)
	if err != nil {
		config.Log.Error("Failed to load inspection windows",
			zap.String("location_id", locationID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// All file bytes hit disk before the transaction starts. A rollback
	// after this point leaves orphaned files; cleanup happens out of band.
	type savedPhoto struct {
		name string
		size int64
	}
	saved := make([]savedPhoto, 0, len(files))
	for _, fh := range files {
		name, size, err := savePhoto(fh)
		if err != nil {
			config.Log.Error("Failed to store photo",
				zap.String("location_id", locationID), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to store photos")
			return
		}
		saved = append(saved, savedPhoto{name: name, size: size})
	}

	submission := models.Submission{
		LocationID:       location.ID,
		ChecklistID:      location.ChecklistID,
		SubcontractorID:  location.SubcontractorID,
		AccountManagerID: location.AccountManagerID,
		SubmittedBy:      r.FormValue("submittedBy"),
		ChecklistData:    checklistData,
		PhotoCount:       len(saved),
		Notes:            r.FormValue("notes"),
		SubmittedAt:      now,
	}
	if currentIVR != nil {
		submission.IVRID = &currentIVR.ID
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		for i, sp := range saved {
			photo := models.Photo{
				SubmissionID:    submission.ID,
				FileName:        sp.name,
				FilePath:        "/uploads/" + sp.name,
				FileSize:        sp.size,
				PhotoType:       models.PhotoTypeForIndex(i),
				RetentionExpiry: now.AddDate(0, 0, models.PhotoRetentionDays),
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		names := make([]string, len(saved))
		for i, sp := range saved {
			names[i] = sp.name
		}
		config.Log.Error("Submission transaction failed, files orphaned",
			zap.String("location_id", locationID),
			zap.Strings("orphaned_files", names),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to submit checklist")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"submissionId": submission.ID.String(),
		"message":      "Checklist submitted successfully",
	})
}

func currentWindowForLocation(db *gorm.DB, locationID string, asOf time.Time) (*models.InspectionWindow, error) {
	var windows []models.InspectionWindow
	if err := db.Where("location_id = ?", locationID).Find(&windows).Error; err != nil {
		return nil, err
	}
	return utils.CurrentWindow(windows, asOf), nil
}

func ivrSummary(w *models.InspectionWindow) interface{} {
	if w == nil {
		return nil
	}
	return map[string]interface{}{
		"id":             w.ID.String(),
		"ticketNumber":   w.TicketNumber,
		"startDate":      w.StartDate,
		"expirationDate": w.ExpirationDate,
		"periodLabel":    w.PeriodLabel,
	}
}
