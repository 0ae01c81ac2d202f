package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250901_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AccountManager{}, &models.Subcontractor{},
					&models.ChecklistTemplate{}, &models.Location{}, &models.InspectionWindow{})
			},
		},
		{
			ID: "20250901_create_submission_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Submission{}, &models.Photo{})
			},
		},
	})
	return m.Migrate()
}
