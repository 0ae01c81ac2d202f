package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

// setupTestDB points config.DB at a throwaway sqlite database and isolates
// the upload directory.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "onsite.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	require.NoError(t, config.Migrations(db))

	prevDB, prevDir := config.DB, config.UploadDir
	config.DB = db
	config.UploadDir = t.TempDir()
	t.Cleanup(func() {
		config.DB, config.UploadDir = prevDB, prevDir
	})
	return db
}

type fixture struct {
	Manager       models.AccountManager
	Subcontractor models.Subcontractor
	Checklist     models.ChecklistTemplate
	Location      models.Location
	Window        models.InspectionWindow
}

// seedFixture creates one location wired to a manager, subcontractor,
// checklist template, and an inspection window covering today.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	fx := fixture{
		Manager: models.AccountManager{
			FirstName: "Dana", LastName: "Reyes",
			Email: "dana.reyes@onsite.example", PasswordHash: string(hash), IsActive: true,
		},
		Subcontractor: models.Subcontractor{Name: "BrightSide Facility Services", IsActive: true},
		Checklist: models.ChecklistTemplate{
			ID: "CL-STANDARD", Name: "Standard Facility Cleaning",
			Config: models.ChecklistConfig{
				HeaderFields: []models.HeaderField{
					{Name: "serviceDate", Label: "Service Date", Kind: models.FieldDate, Required: true},
				},
				Sections: []models.ChecklistSection{
					{Title: "Interior", Tasks: []string{"Sweep floors", "Empty trash"}},
				},
			},
		},
	}
	require.NoError(t, db.Create(&fx.Manager).Error)
	require.NoError(t, db.Create(&fx.Subcontractor).Error)
	require.NoError(t, db.Create(&fx.Checklist).Error)

	fx.Location = models.Location{
		ID: "LOC1", Name: "Riverside Service Center",
		Address: "1200 River Rd", City: "Columbus", State: "OH", Zip: "43215",
		SubcontractorID:     &fx.Subcontractor.ID,
		AccountManagerID:    &fx.Manager.ID,
		ChecklistID:         fx.Checklist.ID,
		ServiceIntervalDays: 7,
		IsActive:            true,
	}
	require.NoError(t, db.Create(&fx.Location).Error)

	today := time.Now()
	fx.Window = models.InspectionWindow{
		LocationID:     fx.Location.ID,
		TicketNumber:   "IVR-1001",
		StartDate:      today.AddDate(0, 0, -5),
		ExpirationDate: today.AddDate(0, 0, 10),
		PeriodLabel:    "Sep 2025",
	}
	require.NoError(t, db.Create(&fx.Window).Error)
	return fx
}

// testRouter exposes the handlers under their real paths without pulling in
// the routes package.
func testRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/checklist/{locationId}", GetChecklist).Methods("GET")
	r.HandleFunc("/api/checklist/{locationId}/submit", SubmitChecklist).Methods("POST")
	r.HandleFunc("/api/submissions/{submissionId}", GetSubmission).Methods("GET")
	r.HandleFunc("/api/login", Login).Methods("POST")
	r.HandleFunc("/api/dashboard", Dashboard).Methods("GET")
	return r
}

type testPhoto struct {
	name        string
	contentType string
	content     []byte
}

func jpegPhoto(name string) testPhoto {
	return testPhoto{name: name, contentType: "image/jpeg", content: []byte("fake jpeg bytes")}
}

// multipartBody assembles a submission form the way the checklist client
// sends it: text fields plus files under the "photos" field.
func multipartBody(t *testing.T, fields map[string]string, photos []testPhoto) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, p := range photos {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos"; filename=%q`, p.name))
		h.Set("Content-Type", p.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func submitRequest(t *testing.T, locationID string, fields map[string]string, photos []testPhoto) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, fields, photos)
	req, err := http.NewRequest(http.MethodPost, "/api/checklist/"+locationID+"/submit", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	return req
}
