package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InspectionWindow is an IVR period during which a location's service is
// expected. At most one window is current for a location at any instant: the
// one covering today, tie-broken by latest start date when ranges overlap
// (overlaps should not happen by design but are tolerated).
type InspectionWindow struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LocationID     string    `gorm:"size:50;index;not null" json:"locationId"`
	TicketNumber   string    `gorm:"size:50" json:"ticketNumber"`
	StartDate      time.Time `gorm:"not null" json:"startDate"`
	ExpirationDate time.Time `gorm:"not null" json:"expirationDate"`
	PeriodLabel    string    `gorm:"size:50" json:"periodLabel"`
	CreatedAt      time.Time `json:"createdAt"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (w *InspectionWindow) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}

func (InspectionWindow) TableName() string {
	return "ivrs"
}
