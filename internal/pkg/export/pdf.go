package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
)

// AttendancePDF renders the flattened report rows as an A4 table, one row
// per record.
func AttendancePDF(title string, rows []report.ExportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Attendance Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colDate := contentW * 0.16
	colCode := contentW * 0.14
	colName := contentW * 0.30
	colArrived := contentW * 0.20
	colLeft := contentW * 0.20

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(colDate, 7, "DATE", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colCode, 7, "CODE", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colName, 7, "NAME", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colArrived, 7, "Arrived At", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colLeft, 7, "Left At", "1", 1, "L", true, 0, "")
	}

	writeHeader()
	pdf.SetFont("Helvetica", "", 8)

	for _, row := range rows {
		// Repeat the header after a page break.
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Helvetica", "", 8)
		}

		name := truncate(row.EmployeeName, 34)

		pdf.CellFormat(colDate, 6, row.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colCode, 6, row.EmployeeCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colArrived, 6, row.ArrivedAt, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colLeft, 6, row.LeftAt, "1", 1, "L", false, 0, "")
	}

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "No attendance recorded in this range.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// truncate shortens s to at most max runes. The ellipsis stays ASCII so the
// core cp1252 fonts can render it.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
