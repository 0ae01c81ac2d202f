package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ChecklistConfig {
	return ChecklistConfig{
		HeaderFields: []HeaderField{
			{Name: "serviceDate", Label: "Service Date", Kind: FieldDate, Required: true},
			{Name: "crewSize", Label: "Crew Size", Kind: FieldNumber},
		},
		Sections: []ChecklistSection{
			{Title: "Interior", Tasks: []string{"Sweep floors"}},
		},
	}
}

func TestChecklistConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChecklistConfig)
		wantErr string
	}{
		{"valid config", func(c *ChecklistConfig) {}, ""},
		{"no header fields is fine", func(c *ChecklistConfig) { c.HeaderFields = nil }, ""},
		{"no sections", func(c *ChecklistConfig) { c.Sections = nil }, "no sections"},
		{"unnamed header field", func(c *ChecklistConfig) { c.HeaderFields[0].Name = "" }, "no name"},
		{"unknown field type", func(c *ChecklistConfig) { c.HeaderFields[0].Kind = "dropdown" }, "unknown type"},
		{"untitled section", func(c *ChecklistConfig) { c.Sections[0].Title = "" }, "no title"},
		{"section without tasks", func(c *ChecklistConfig) { c.Sections[0].Tasks = nil }, "no tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// The config must survive the jsonb round trip both as []byte (postgres) and
// string (sqlite) driver values.
func TestChecklistConfigScanValue(t *testing.T) {
	cfg := validConfig()

	value, err := cfg.Value()
	require.NoError(t, err)

	var fromBytes ChecklistConfig
	require.NoError(t, fromBytes.Scan(value))
	assert.Equal(t, cfg, fromBytes)

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	var fromString ChecklistConfig
	require.NoError(t, fromString.Scan(string(raw)))
	assert.Equal(t, cfg, fromString)

	var fromNil ChecklistConfig
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil.Sections)
}
