package report

import (
	"context"
)

// ReportService defines the range query and its export renderings. All three
// outputs derive from the same grouped structure.
type ReportService interface {
	// QueryRange returns attendance grouped by calendar date, most recent
	// date first, most recent arrival first within each date.
	QueryRange(ctx context.Context, req RangeRequest) (RangeResponse, error)

	// ExportExcel renders the range as an xlsx workbook.
	ExportExcel(ctx context.Context, req RangeRequest) (content []byte, filename string, err error)

	// ExportPDF renders the range as a printable document.
	ExportPDF(ctx context.Context, req RangeRequest) (content []byte, filename string, err error)
}
