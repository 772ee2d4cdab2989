package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "DTR"
)

var ledgerHeaders = []string{
	"Date", "Day", "Schedule", "Work Shift", "Time In", "Time Out", "Total Hours",
	"Late (min)", "Undertime (min)", "Overtime (hrs)", "Site", "Remarks",
}

// Filename returns the attachment name of a report's workbook.
func Filename(report dtr.Report) string {
	return fmt.Sprintf("DTR_%s_%s_%s.xlsx",
		sanitize(report.UserID), report.Cutoff.StartDate, report.Cutoff.EndDate)
}

// WriteDTR renders report as a single-sheet workbook: title, ledger table and totals.
func WriteDTR(w io.Writer, report dtr.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(ledgerHeaders))

	f.SetCellValue(sheetName, "A1", "DAILY TIME RECORD")
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Employee: %s", report.UserID))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Cutoff: %s to %s", report.Cutoff.StartDate, report.Cutoff.EndDate))

	const headerRow = 5
	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := headerRow + 1
	for _, e := range report.Entries {
		values := []any{
			e.Date, e.Weekday, e.ScheduleTitle, e.WorkShift, e.TimeIn, e.TimeOut, e.TotalHours,
			e.LateMinutes, e.UndertimeMinutes, e.OvertimeHours, e.Site, e.Remarks,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	row++
	t := report.Totals
	summary := [][2]any{
		{"Total Hours", t.TotalHours},
		{"Total Overtime", t.TotalOvertime},
		{"Total Late (hrs)", t.TotalLate},
		{"Total Undertime (hrs)", t.TotalUndertime},
		{"Present Days", t.PresentDays},
		{"Absent Days", t.AbsentDays},
		{"Leave Days", t.LeaveDays},
		{"Rest Days", t.RestDays},
	}
	for _, s := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s[1])
		row++
	}

	f.SetColWidth(sheetName, "A", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 22)
	f.SetColWidth(sheetName, "E", "J", 14)
	f.SetColWidth(sheetName, "K", "K", 12)
	f.SetColWidth(sheetName, "L", "L", 30)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
