package config

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/models"
)

// SeedDemoData loads a small working data set so the evergreen links and the
// dashboard are usable immediately after first start. Each step skips itself
// when rows already exist, so restarts are safe.
func SeedDemoData(db *gorm.DB) error {
	manager, err := seedAccountManager(db)
	if err != nil {
		return err
	}
	subcontractor, err := seedSubcontractor(db)
	if err != nil {
		return err
	}
	checklist, err := seedChecklist(db)
	if err != nil {
		return err
	}
	if err := seedLocations(db, manager, subcontractor, checklist); err != nil {
		return err
	}
	return seedInspectionWindows(db)
}

func seedAccountManager(db *gorm.DB) (*models.AccountManager, error) {
	var manager models.AccountManager
	if err := db.First(&manager).Error; err == nil {
		return &manager, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	manager = models.AccountManager{
		FirstName:    "Dana",
		LastName:     "Reyes",
		Email:        "dana.reyes@onsite.example",
		Phone:        "5550100",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&manager).Error; err != nil {
		return nil, err
	}
	Log.Info("Seeded account manager", zap.String("email", manager.Email))
	return &manager, nil
}

func seedSubcontractor(db *gorm.DB) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	if err := db.First(&sub).Error; err == nil {
		return &sub, nil
	}

	sub = models.Subcontractor{
		Name:         "BrightSide Facility Services",
		ContactName:  "Luis Ortega",
		ContactEmail: "dispatch@brightside.example",
		ContactPhone: "5550111",
		IsActive:     true,
	}
	if err := db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func seedChecklist(db *gorm.DB) (*models.ChecklistTemplate, error) {
	var checklist models.ChecklistTemplate
	if err := db.First(&checklist).Error; err == nil {
		return &checklist, nil
	}

	checklist = models.ChecklistTemplate{
		ID:   "CL-STANDARD",
		Name: "Standard Facility Cleaning",
		Config: models.ChecklistConfig{
			HeaderFields: []models.HeaderField{
				{Name: "serviceDate", Label: "Service Date", Kind: models.FieldDate, Required: true},
				{Name: "crewSize", Label: "Crew Size", Kind: models.FieldNumber, Required: false},
				{Name: "keysReturned", Label: "Keys Returned", Kind: models.FieldCheckbox, Required: false},
			},
			Sections: []models.ChecklistSection{
				{
					Title: "Interior",
					Tasks: []string{
						"Sweep and mop all floors",
						"Empty trash receptacles",
						"Clean and sanitize restrooms",
						"Wipe down counters and fixtures",
					},
				},
				{
					Title: "Exterior",
					Tasks: []string{
						"Police grounds for litter",
						"Pressure-wash entryway",
						"Inspect dumpster area",
					},
				},
			},
		},
	}
	if err := checklist.Config.Validate(); err != nil {
		return nil, err
	}
	if err := db.Create(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func seedLocations(db *gorm.DB, manager *models.AccountManager, sub *models.Subcontractor, checklist *models.ChecklistTemplate) error {
	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locations := []models.Location{
		{
			ID: "LOC1", Name: "Riverside Service Center",
			Address: "1200 River Rd", City: "Columbus", State: "OH", Zip: "43215",
			InternalWO: "WO-1001",
		},
		{
			ID: "LOC2", Name: "Lakeview Collision",
			Address: "88 Lakeview Ave", City: "Cleveland", State: "OH", Zip: "44101",
			InternalWO: "WO-1002",
		},
		{
			ID: "LOC3", Name: "Maple Heights Body Shop",
			Address: "430 Maple St", City: "Dayton", State: "OH", Zip: "45402",
			InternalWO: "WO-1003",
		},
	}
	for i := range locations {
		locations[i].SubcontractorID = &sub.ID
		locations[i].AccountManagerID = &manager.ID
		locations[i].ChecklistID = checklist.ID
		locations[i].ServiceIntervalDays = models.DefaultServiceIntervalDays
		locations[i].IsActive = true
		if err := db.Create(&locations[i]).Error; err != nil {
			return err
		}
	}
	Log.Info("Seeded locations", zap.Int("count", len(locations)))
	return nil
}

func seedInspectionWindows(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.InspectionWindow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var locations []models.Location
	if err := db.Order("id").Find(&locations).Error; err != nil {
		return err
	}

	today := time.Now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	for _, loc := range locations {
		window := models.InspectionWindow{
			LocationID:     loc.ID,
			TicketNumber:   "IVR-" + loc.ID,
			StartDate:      monthStart,
			ExpirationDate: monthEnd,
			PeriodLabel:    monthStart.Format("Jan 2006"),
		}
		if err := db.Create(&window).Error; err != nil {
			return err
		}
	}
	return nil
}
