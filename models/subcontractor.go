package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcontractor performs the on-site cleaning/maintenance work.
type Subcontractor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	ContactName  string    `gorm:"size:100" json:"contactName,omitempty"`
	ContactEmail string    `gorm:"size:100" json:"contactEmail,omitempty"`
	ContactPhone string    `gorm:"size:15" json:"contactPhone,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Locations []Location `gorm:"foreignKey:SubcontractorID" json:"locations,omitempty"`
}

func (s *Subcontractor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (Subcontractor) TableName() string {
	return "subcontractors"
}
