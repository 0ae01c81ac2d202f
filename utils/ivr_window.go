package utils

import (
	"time"

	"github.com/jesse-projects/onsite-crash-champions/models"
)

// CurrentWindow selects the single inspection window active on asOf: the one
// whose start..expiration range covers the date, tie-broken by latest start
// when ranges overlap. Returns nil when no window qualifies; the checklist
// stays fillable either way.
//
// Comparison is date-granular so a window expiring today still counts for the
// whole of today.
func CurrentWindow(windows []models.InspectionWindow, asOf time.Time) *models.InspectionWindow {
	day := dateOf(asOf)
	var current *models.InspectionWindow
	for i := range windows {
		w := &windows[i]
		if day.Before(dateOf(w.StartDate)) || day.After(dateOf(w.ExpirationDate)) {
			continue
		}
		if current == nil || dateOf(w.StartDate).After(dateOf(current.StartDate)) {
			current = w
		}
	}
	return current
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
