package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
	"github.com/nexhr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	QueryRange(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func rangeRequestFromQuery(r *http.Request) report.RangeRequest {
	return report.RangeRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
}

// QueryRange implements ReportHandler.
func (h *ReportHandlerImpl) QueryRange(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.QueryRange(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		slog.Error("QueryRange service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ExportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	content, filename, err := h.reportService.ExportExcel(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		slog.Error("ExportExcel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	content, filename, err := h.reportService.ExportPDF(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		slog.Error("ExportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, "application/pdf", content)
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
