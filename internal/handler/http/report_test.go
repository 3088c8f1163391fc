package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
)

type fakeReportService struct {
	queryResp report.RangeResponse
	queryErr  error
}

func (f *fakeReportService) QueryRange(_ context.Context, _ report.RangeRequest) (report.RangeResponse, error) {
	return f.queryResp, f.queryErr
}

func (f *fakeReportService) ExportExcel(_ context.Context, _ report.RangeRequest) ([]byte, string, error) {
	return []byte("xlsx-bytes"), "attendance.xlsx", nil
}

func (f *fakeReportService) ExportPDF(_ context.Context, _ report.RangeRequest) ([]byte, string, error) {
	return []byte("%PDF-bytes"), "export_2026-03-01_2026-03-09.pdf", nil
}

func TestQueryRangeHandler(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{
		queryResp: report.RangeResponse{From: "2026-03-01", To: "2026-03-09"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?from=2026-03-01&to=2026-03-09", nil)
	rec := httptest.NewRecorder()
	handler.QueryRange(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from":"2026-03-01"`)
}

func TestQueryRangeHandlerInvalidRange(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{queryErr: report.ErrInvalidRange})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?from=2026-03-09&to=2026-03-01", nil)
	rec := httptest.NewRecorder()
	handler.QueryRange(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportExcelHandlerHeaders(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances/export/excel?from=2026-03-01&to=2026-03-09", nil)
	rec := httptest.NewRecorder()
	handler.ExportExcel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="attendance.xlsx"`, rec.Header().Get("Content-Disposition"))
}

func TestExportPDFHandlerHeaders(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances/export/pdf?from=2026-03-01&to=2026-03-09", nil)
	rec := httptest.NewRecorder()
	handler.ExportPDF(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="export_2026-03-01_2026-03-09.pdf"`, rec.Header().Get("Content-Disposition"))
}
