package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoRetentionDays is how long uploaded evidence must be retained. The
// expiry is advisory; deletion after expiry is handled outside this service.
const PhotoRetentionDays = 30

const (
	PhotoTypeBefore       = "Before"
	PhotoTypeAfter        = "After"
	PhotoTypeAreaSpecific = "Area Specific"
)

// PhotoTypeForIndex assigns the evidence type by upload position.
func PhotoTypeForIndex(i int) string {
	switch i {
	case 0:
		return PhotoTypeBefore
	case 1:
		return PhotoTypeAfter
	default:
		return PhotoTypeAreaSpecific
	}
}

// Photo is one stored evidence file belonging to a submission.
type Photo struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID    uuid.UUID `gorm:"type:uuid;index;not null" json:"submissionId"`
	FileName        string    `gorm:"size:255;not null" json:"fileName"`
	FilePath        string    `gorm:"size:255;not null" json:"filePath"`
	FileSize        int64     `json:"fileSize"`
	PhotoType       string    `gorm:"size:20;not null" json:"photoType"`
	RetentionExpiry time.Time `json:"retentionExpiry"`
	UploadDate      time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (Photo) TableName() string {
	return "photos"
}
