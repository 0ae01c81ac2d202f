package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jesse-projects/onsite-crash-champions/config"
	"github.com/jesse-projects/onsite-crash-champions/models"
)

var exportHeader = []string{
	"Submission ID", "Submitted At", "Location", "Subcontractor",
	"IVR Ticket", "Period", "Account Manager", "Submitted By", "Photos", "Notes",
}

// ExportSubmissions downloads the recent submission history as a spreadsheet.
// ?format=csv switches from the default xlsx.
func ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	var submissions []models.Submission
	err := config.DB.
		Preload("Location").Preload("Subcontractor").Preload("IVR").Preload("AccountManager").
		Order("submitted_at DESC").
		Limit(recentSubmissionsCap).
		Find(&submissions).Error
	if err != nil {
		config.Log.Error("Export query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	rows := make([][]string, 0, len(submissions))
	for i := range submissions {
		rows = append(rows, exportRow(&submissions[i]))
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rows)
		return
	}
	writeExcelExport(w, rows)
}

func exportRow(sub *models.Submission) []string {
	row := []string{
		sub.ID.String(),
		sub.SubmittedAt.Format(time.RFC3339),
		"", "", "", "", "",
		sub.SubmittedBy,
		strconv.Itoa(sub.PhotoCount),
		sub.Notes,
	}
	if sub.Location != nil {
		row[2] = sub.Location.Name
	}
	if sub.Subcontractor != nil {
		row[3] = sub.Subcontractor.Name
	}
	if sub.IVR != nil {
		row[4] = sub.IVR.TicketNumber
		row[5] = sub.IVR.PeriodLabel
	}
	if sub.AccountManager != nil {
		row[6] = sub.AccountManager.FullName()
	}
	return row
}

func writeExcelExport(w http.ResponseWriter, rows [][]string) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		config.Log.Error("Failed to generate Excel export", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("submissions_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func writeCSVExport(w http.ResponseWriter, rows [][]string) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Write(exportHeader)
	for _, row := range rows {
		writer.Write(row)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		config.Log.Error("Failed to generate CSV export", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to generate CSV file")
		return
	}

	filename := fmt.Sprintf("submissions_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
