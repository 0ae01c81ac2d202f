package utils

import (
	"testing"
	"time"

	"github.com/jesse-projects/onsite-crash-champions/models"
)

func window(ticket string, start, end time.Time) models.InspectionWindow {
	return models.InspectionWindow{
		TicketNumber:   ticket,
		StartDate:      start,
		ExpirationDate: end,
	}
}

func TestCurrentWindow(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	tests := []struct {
		name     string
		windows  []models.InspectionWindow
		expected string // ticket of expected window, "" for nil
	}{
		{"no windows", nil, ""},
		{
			"single active window",
			[]models.InspectionWindow{window("IVR-1", day(-5), day(5))},
			"IVR-1",
		},
		{
			"window starting today counts",
			[]models.InspectionWindow{window("IVR-1", day(0), day(10))},
			"IVR-1",
		},
		{
			"window expiring today counts for all of today",
			[]models.InspectionWindow{window("IVR-1", day(-10), day(0))},
			"IVR-1",
		},
		{
			"expired window ignored",
			[]models.InspectionWindow{window("IVR-1", day(-20), day(-1))},
			"",
		},
		{
			"future window ignored",
			[]models.InspectionWindow{window("IVR-1", day(1), day(10))},
			"",
		},
		{
			"overlapping windows pick latest start",
			[]models.InspectionWindow{
				window("IVR-old", day(-10), day(5)),
				window("IVR-new", day(-2), day(8)),
			},
			"IVR-new",
		},
		{
			"overlap order independent",
			[]models.InspectionWindow{
				window("IVR-new", day(-2), day(8)),
				window("IVR-old", day(-10), day(5)),
			},
			"IVR-new",
		},
		{
			"active window among expired ones",
			[]models.InspectionWindow{
				window("IVR-1", day(-60), day(-31)),
				window("IVR-2", day(-30), day(-1)),
				window("IVR-3", day(-7), day(22)),
			},
			"IVR-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentWindow(tt.windows, asOf)
			if tt.expected == "" {
				if got != nil {
					t.Errorf("CurrentWindow() = %v, expected nil", got.TicketNumber)
				}
				return
			}
			if got == nil {
				t.Fatalf("CurrentWindow() = nil, expected %v", tt.expected)
			}
			if got.TicketNumber != tt.expected {
				t.Errorf("CurrentWindow() = %v, expected %v", got.TicketNumber, tt.expected)
			}
		})
	}
}

// Two qualifying windows must never both be returned; selection is single and
// deterministic regardless of how often it runs.
func TestCurrentWindowDeterministic(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.InspectionWindow{
		window("A", asOf.AddDate(0, 0, -4), asOf.AddDate(0, 0, 4)),
		window("B", asOf.AddDate(0, 0, -4), asOf.AddDate(0, 0, 6)),
		window("C", asOf.AddDate(0, 0, -1), asOf.AddDate(0, 0, 2)),
	}

	for i := 0; i < 5; i++ {
		got := CurrentWindow(windows, asOf)
		if got == nil || got.TicketNumber != "C" {
			t.Fatalf("CurrentWindow() = %+v, expected C every time", got)
		}
	}
}
