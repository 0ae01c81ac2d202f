package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
	"github.com/jesse-projects/onsite-crash-champions/utils"
)

// recentSubmissionsCap bounds the dashboard submission feed.
const recentSubmissionsCap = 100

type dashboardLocation struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	City                string              `json:"city,omitempty"`
	State               string              `json:"state,omitempty"`
	SubcontractorName   string              `json:"subcontractorName,omitempty"`
	AccountManagerID    string              `json:"accountManagerId,omitempty"`
	AccountManagerName  string              `json:"accountManagerName,omitempty"`
	ServiceIntervalDays int                 `json:"serviceIntervalDays"`
	LastSubmissionDate  *time.Time          `json:"lastSubmissionDate,omitempty"`
	LastSubmissionID    *uuid.UUID          `json:"lastSubmissionId,omitempty"`
	Status              utils.ServiceStatus `json:"status"`
}

type dashboardSubmission struct {
	ID                 uuid.UUID `json:"id"`
	LocationID         string    `json:"locationId"`
	LocationName       string    `json:"locationName"`
	SubcontractorName  string    `json:"subcontractorName,omitempty"`
	TicketNumber       string    `json:"ivrTicketNumber,omitempty"`
	PeriodLabel        string    `json:"periodLabel,omitempty"`
	AccountManagerName string    `json:"accountManagerName,omitempty"`
	SubmittedBy        string    `json:"submittedBy"`
	PhotoCount         int       `json:"photoCount"`
	SubmittedAt        time.Time `json:"submittedAt"`
}

type dashboardStats struct {
	TotalLocations  int `json:"totalLocations"`
	CurrentServices int `json:"currentServices"`
	StaleServices   int `json:"staleServices"`
	OverdueServices int `json:"overdueServices"`
}

type latestSubmission struct {
	LocationID  string
	ID          uuid.UUID
	SubmittedAt time.Time
}

// Dashboard assembles the full account-manager view in one response: every
// active location with its latest submission and staleness status, the most
// recent submissions, the managers available for client-side filtering, and
// the aggregate staleness tallies. Pure read composition; two calls with no
// intervening writes return identical data.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	db := config.DB
	now := time.Now()

	var locations []models.Location
	err := db.Preload("Subcontractor").Preload("AccountManager").
		Where("is_active = ?", true).
		Order("name").
		Find(&locations).Error
	if err != nil {
		config.Log.Error("Dashboard locations query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	latest, err := latestSubmissionsByLocation(db)
	if err != nil {
		config.Log.Error("Dashboard latest-submission query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var recent []models.Submission
	err = db.Preload("Location").Preload("Subcontractor").Preload("IVR").Preload("AccountManager").
		Order("submitted_at DESC").
		Limit(recentSubmissionsCap).
		Find(&recent).Error
	if err != nil {
		config.Log.Error("Dashboard submissions query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var managers []models.AccountManager
	err = db.Distinct("account_managers.*").
		Joins("JOIN locations ON locations.account_manager_id = account_managers.id").
		Where("account_managers.is_active = ?", true).
		Order("account_managers.first_name, account_managers.last_name").
		Find(&managers).Error
	if err != nil {
		config.Log.Error("Dashboard managers query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	stats := dashboardStats{TotalLocations: len(locations)}
	locationRows := make([]dashboardLocation, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		row := dashboardLocation{
			ID:                  loc.ID,
			Name:                loc.Name,
			City:                loc.City,
			State:               loc.State,
			ServiceIntervalDays: loc.Interval(),
		}
		if loc.Subcontractor != nil {
			row.SubcontractorName = loc.Subcontractor.Name
		}
		if loc.AccountManager != nil {
			row.AccountManagerID = loc.AccountManager.ID.String()
			row.AccountManagerName = loc.AccountManager.FullName()
		}
		if last, ok := latest[loc.ID]; ok {
			ts := last.SubmittedAt
			id := last.ID
			row.LastSubmissionDate = &ts
			row.LastSubmissionID = &id
		}

		row.Status = utils.Classify(row.LastSubmissionDate, loc.Interval(), now)
		switch row.Status {
		case utils.StatusCurrent:
			stats.CurrentServices++
		case utils.StatusStale:
			stats.StaleServices++
		default:
			stats.OverdueServices++
		}
		locationRows = append(locationRows, row)
	}

	submissionRows := make([]dashboardSubmission, 0, len(recent))
	for i := range recent {
		sub := &recent[i]
		row := dashboardSubmission{
			ID:          sub.ID,
			LocationID:  sub.LocationID,
			SubmittedBy: sub.SubmittedBy,
			PhotoCount:  sub.PhotoCount,
			SubmittedAt: sub.SubmittedAt,
		}
		if sub.Location != nil {
			row.LocationName = sub.Location.Name
		}
		if sub.Subcontractor != nil {
			row.SubcontractorName = sub.Subcontractor.Name
		}
		if sub.IVR != nil {
			row.TicketNumber = sub.IVR.TicketNumber
			row.PeriodLabel = sub.IVR.PeriodLabel
		}
		if sub.AccountManager != nil {
			row.AccountManagerName = sub.AccountManager.FullName()
		}
		submissionRows = append(submissionRows, row)
	}

	managerRows := make([]map[string]string, 0, len(managers))
	for i := range managers {
		managerRows = append(managerRows, map[string]string{
			"id":        managers[i].ID.String(),
			"firstName": managers[i].FirstName,
			"lastName":  managers[i].LastName,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":           stats,
		"locations":       locationRows,
		"submissions":     submissionRows,
		"accountManagers": managerRows,
	})
}

// latestSubmissionsByLocation maps location id to its most recent submission.
func latestSubmissionsByLocation(db *gorm.DB) (map[string]latestSubmission, error) {
	var rows []latestSubmission
	err := db.Raw(`
		SELECT s.location_id, s.id, s.submitted_at
		FROM submissions s
		JOIN (
			SELECT location_id, MAX(submitted_at) AS latest
			FROM submissions
			GROUP BY location_id
		) t ON s.location_id = t.location_id AND s.submitted_at = t.latest
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	latest := make(map[string]latestSubmission, len(rows))
	for _, row := range rows {
		latest[row.LocationID] = row
	}
	return latest, nil
}
