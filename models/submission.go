package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one completed checklist. Immutable once created; exactly one
// photo set belongs to it. The window reference is nullable: checklists stay
// fillable when no IVR covers today.
type Submission struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	LocationID       string     `gorm:"size:50;index;not null" json:"locationId"`
	ChecklistID      string     `gorm:"size:50;not null" json:"checklistId"`
	IVRID            *uuid.UUID `gorm:"type:uuid;column:ivr_id" json:"ivrId,omitempty"`
	SubcontractorID  *uuid.UUID `gorm:"type:uuid" json:"subcontractorId,omitempty"`
	AccountManagerID *uuid.UUID `gorm:"type:uuid" json:"accountManagerId,omitempty"`
	SubmittedBy      string     `gorm:"size:150" json:"submittedBy"`
	ChecklistData    JSONMap    `gorm:"type:jsonb" json:"checklistData"`
	PhotoCount       int        `gorm:"not null" json:"photoCount"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt      time.Time  `gorm:"index" json:"submittedAt"`

	Location       *Location          `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Checklist      *ChecklistTemplate `gorm:"foreignKey:ChecklistID" json:"checklist,omitempty"`
	IVR            *InspectionWindow  `gorm:"foreignKey:IVRID" json:"ivr,omitempty"`
	Subcontractor  *Subcontractor     `gorm:"foreignKey:SubcontractorID" json:"subcontractor,omitempty"`
	AccountManager *AccountManager    `gorm:"foreignKey:AccountManagerID" json:"accountManager,omitempty"`
	Photos         []Photo            `gorm:"foreignKey:SubmissionID" json:"photos,omitempty"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now()
	}
	return
}

func (Submission) TableName() string {
	return "submissions"
}
