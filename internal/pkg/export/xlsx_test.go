package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
)

func sampleReport() dtr.Report {
	return dtr.Report{
		UserID: "user-1",
		Cutoff: cutoff.PeriodResponse{ID: "c1", StartDate: "2025-01-06", EndDate: "2025-01-10"},
		Entries: []dtr.DayLedgerEntry{
			{Date: "2025-01-07", Weekday: "Tuesday", Remarks: "Sick Leave", IsLeave: true},
			{Date: "2025-01-06", Weekday: "Monday", TimeIn: "9:10 AM", TimeOut: "6:00 PM", TotalHours: 8.83, LateMinutes: 10, Remarks: "Late"},
		},
		Totals: dtr.Totals{TotalHours: 8.83, PresentDays: 1, LeaveDays: 1},
	}
}

func TestWriteDTR_WritesLedgerRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDTR(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "DAILY TIME RECORD", title)

	header, err := f.GetCellValue(sheetName, "E5")
	require.NoError(t, err)
	assert.Equal(t, "Time In", header)

	first, err := f.GetCellValue(sheetName, "A6")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07", first)

	remarks, err := f.GetCellValue(sheetName, "L7")
	require.NoError(t, err)
	assert.Equal(t, "Late", remarks)

	late, err := f.GetCellValue(sheetName, "H7")
	require.NoError(t, err)
	assert.Equal(t, "10", late)
}

func TestWriteDTR_WritesTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDTR(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// two entries end at row 7, one blank row, totals start at row 9
	label, err := f.GetCellValue(sheetName, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Total Hours", label)

	present, err := f.GetCellValue(sheetName, "B13")
	require.NoError(t, err)
	assert.Equal(t, "1", present)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "DTR_user-1_2025-01-06_2025-01-10.xlsx", Filename(sampleReport()))

	r := sampleReport()
	r.UserID = "a/b c"
	assert.Equal(t, "DTR_a_b_c_2025-01-06_2025-01-10.xlsx", Filename(r))
}
