// utils/staleness.go
package utils

import (
	"time"

	"github.com/jesse-projects/onsite-crash-champions/models"
)

// ServiceStatus is the three-state staleness classification shown on the
// dashboard.
type ServiceStatus string

const (
	StatusCurrent ServiceStatus = "current"
	StatusStale   ServiceStatus = "stale"
	StatusOverdue ServiceStatus = "overdue"
)

// Classify buckets a location by how long ago it was last serviced, relative
// to its configured interval:
//
//	never serviced                      -> overdue
//	daysSince <= interval               -> current
//	daysSince <= interval * 1.5         -> stale
//	otherwise                           -> overdue
//
// daysSince is the floor of the elapsed time in whole days. Callers pass now
// explicitly so the classification stays deterministic under test.
func Classify(lastSubmission *time.Time, intervalDays int, now time.Time) ServiceStatus {
	if intervalDays <= 0 {
		intervalDays = models.DefaultServiceIntervalDays
	}
	if lastSubmission == nil {
		return StatusOverdue
	}
	daysSince := int(now.Sub(*lastSubmission).Hours() / 24)
	if daysSince <= intervalDays {
		return StatusCurrent
	}
	if float64(daysSince) <= float64(intervalDays)*1.5 {
		return StatusStale
	}
	return StatusOverdue
}
