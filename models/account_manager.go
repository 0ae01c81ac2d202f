// models/account_manager.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountManager reviews submissions through the authenticated dashboard.
// Location assignment is view metadata only: every active manager sees every
// location.
type AccountManager struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"firstName"`
	LastName     string    `gorm:"size:100;not null" json:"lastName"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:15" json:"phone,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *AccountManager) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// FullName is the display name carried in token claims and dashboard rows.
func (a *AccountManager) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (AccountManager) TableName() string {
	return "account_managers"
}
