package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
)

func sampleRows() []report.ExportRow {
	return []report.ExportRow{
		{
			Date:         "2026-03-09",
			EmployeeCode: "EMP0002",
			EmployeeName: "Jean Bosco",
			ArrivedAt:    "2026-03-09 09:15:00",
			LeftAt:       "",
		},
		{
			Date:         "2026-03-09",
			EmployeeCode: "EMP0001",
			EmployeeName: "Alice Uwase",
			ArrivedAt:    "2026-03-09 08:30:00",
			LeftAt:       "2026-03-09 17:02:00",
		},
	}
}

func TestAttendanceExcelRoundTrip(t *testing.T) {
	content, err := AttendanceExcel(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"DATE", "CODE", "NAME", "Arrived At", "Left At"}, rows[0])
	assert.Equal(t, "EMP0002", rows[1][1])
	assert.Equal(t, "2026-03-09 17:02:00", rows[2][4])
}

func TestAttendanceExcelEmpty(t *testing.T) {
	content, err := AttendanceExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestAttendancePDF(t *testing.T) {
	content, err := AttendancePDF("2026-03-01 to 2026-03-09", sampleRows())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.Greater(t, len(content), 500)
}

func TestTruncateIsRuneSafe(t *testing.T) {
	// multi-byte names must not be cut mid-rune
	long := "Ingabire Uwamahoro Mukandayisenga Ézéchias Num Two"
	got := truncate(long, 34)

	assert.LessOrEqual(t, len([]rune(got)), 34)
	assert.True(t, []rune(got)[len([]rune(got))-1] == '.')

	short := "Alice Uwase"
	assert.Equal(t, short, truncate(short, 34))
}

func TestAttendancePDFLongMultibyteName(t *testing.T) {
	rows := []report.ExportRow{{
		Date:         "2026-03-09",
		EmployeeCode: "EMP0001",
		EmployeeName: "Ingabire Uwamahoro Mukandayisenga Ézéchias Longname",
		ArrivedAt:    "2026-03-09 08:30:00",
	}}

	content, err := AttendancePDF("2026-03-09 to 2026-03-09", rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestAttendancePDFEmptyRange(t *testing.T) {
	content, err := AttendancePDF("2026-03-01 to 2026-03-09", nil)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}
