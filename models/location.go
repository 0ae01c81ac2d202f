package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultServiceIntervalDays applies when a location has no configured
// interval.
const DefaultServiceIntervalDays = 7

// Location is one serviced site, reached by subcontractors through its
// evergreen link /checklist/{id}. Locations are soft-deactivated via IsActive
// and never hard-deleted.
type Location struct {
	ID                  string     `gorm:"size:50;primaryKey" json:"id"`
	Name                string     `gorm:"size:150;not null" json:"name"`
	Address             string     `gorm:"size:255" json:"address,omitempty"`
	City                string     `gorm:"size:100" json:"city,omitempty"`
	State               string     `gorm:"size:50" json:"state,omitempty"`
	Zip                 string     `gorm:"size:20" json:"zip,omitempty"`
	InternalWO          string     `gorm:"size:50" json:"internalWo,omitempty"`
	SubcontractorID     *uuid.UUID `gorm:"type:uuid;index" json:"subcontractorId,omitempty"`
	AccountManagerID    *uuid.UUID `gorm:"type:uuid;index" json:"accountManagerId,omitempty"`
	ChecklistID         string     `gorm:"size:50;not null" json:"checklistId"`
	ServiceIntervalDays int        `gorm:"default:7" json:"serviceIntervalDays"`
	IsActive            bool       `gorm:"default:true" json:"isActive"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	Subcontractor  *Subcontractor     `gorm:"foreignKey:SubcontractorID" json:"subcontractor,omitempty"`
	AccountManager *AccountManager    `gorm:"foreignKey:AccountManagerID" json:"accountManager,omitempty"`
	Checklist      *ChecklistTemplate `gorm:"foreignKey:ChecklistID" json:"checklist,omitempty"`
}

// Interval returns the configured service interval, falling back to the
// default for unset or nonsense values.
func (l *Location) Interval() int {
	if l.ServiceIntervalDays <= 0 {
		return DefaultServiceIntervalDays
	}
	return l.ServiceIntervalDays
}

func (Location) TableName() string {
	return "locations"
}
