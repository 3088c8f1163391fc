package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
)

const attendanceSheet = "Attendance"

var excelHeaders = []string{"DATE", "CODE", "NAME", "Arrived At", "Left At"}

// AttendanceExcel renders the flattened report rows as an xlsx workbook.
func AttendanceExcel(rows []report.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(attendanceSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(attendanceSheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(attendanceSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []string{row.Date, row.EmployeeCode, row.EmployeeName, row.ArrivedAt, row.LeftAt}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(attendanceSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(attendanceSheet, "A", "E", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
