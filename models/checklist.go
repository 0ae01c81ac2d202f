package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FieldKind enumerates the header field types a checklist template may carry.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldDate     FieldKind = "date"
	FieldNumber   FieldKind = "number"
	FieldCheckbox FieldKind = "checkbox"
)

// HeaderField is one typed input at the top of the checklist form.
type HeaderField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"type"`
	Required bool      `json:"required"`
}

// ChecklistSection is an ordered group of task descriptions.
type ChecklistSection struct {
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
}

// ChecklistConfig is the structured form definition. The reference data kept
// this as opaque JSON; here it is a validated tagged schema stored as jsonb.
type ChecklistConfig struct {
	HeaderFields []HeaderField      `json:"headerFields"`
	Sections     []ChecklistSection `json:"sections"`
}

// Validate rejects malformed configurations at load/seed time rather than
// trusting them at submission time.
func (c ChecklistConfig) Validate() error {
	if len(c.Sections) == 0 {
		return errors.New("checklist config has no sections")
	}
	for i, f := range c.HeaderFields {
		if f.Name == "" {
			return fmt.Errorf("header field %d has no name", i)
		}
		switch f.Kind {
		case FieldText, FieldDate, FieldNumber, FieldCheckbox:
		default:
			return fmt.Errorf("header field %q has unknown type %q", f.Name, f.Kind)
		}
	}
	for i, s := range c.Sections {
		if s.Title == "" {
			return fmt.Errorf("section %d has no title", i)
		}
		if len(s.Tasks) == 0 {
			return fmt.Errorf("section %q has no tasks", s.Title)
		}
	}
	return nil
}

// Scan implements the sql.Scanner interface for ChecklistConfig
func (c *ChecklistConfig) Scan(value interface{}) error {
	if value == nil {
		*c = ChecklistConfig{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into ChecklistConfig", value)
	}
}

// Value implements the driver.Valuer interface for ChecklistConfig
func (c ChecklistConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// GormDataType defines the data type for GORM
func (ChecklistConfig) GormDataType() string {
	return "jsonb"
}

// ChecklistTemplate is the reusable form a location's submissions are filled
// against. Immutable once referenced by submissions, for audit fidelity.
type ChecklistTemplate struct {
	ID        string          `gorm:"size:50;primaryKey" json:"id"`
	Name      string          `gorm:"size:150;not null" json:"name"`
	Config    ChecklistConfig `gorm:"type:jsonb" json:"config"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (ChecklistTemplate) TableName() string {
	return "checklists"
}
