package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nexhr/attendance-backend-go/internal/domain/report"
	"github.com/nexhr/attendance-backend-go/internal/pkg/export"
)

type reportServiceImpl struct {
	reportRepo report.ReportRepository
	location   *time.Location
}

func NewReportService(reportRepo report.ReportRepository, location *time.Location) report.ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		location:   location,
	}
}

func (s *reportServiceImpl) queryGroups(ctx context.Context, req report.RangeRequest) ([]report.DayGroup, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := req.Bounds()
	if from.After(to) {
		return nil, report.ErrInvalidRange
	}

	records, err := s.reportRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return report.GroupByDay(records, s.location), nil
}

// QueryRange implements report.ReportService.
func (s *reportServiceImpl) QueryRange(ctx context.Context, req report.RangeRequest) (report.RangeResponse, error) {
	groups, err := s.queryGroups(ctx, req)
	if err != nil {
		return report.RangeResponse{}, err
	}

	return report.RangeResponse{
		From: req.From,
		To:   req.To,
		Days: groups,
	}, nil
}

// ExportExcel implements report.ReportService.
func (s *reportServiceImpl) ExportExcel(ctx context.Context, req report.RangeRequest) ([]byte, string, error) {
	groups, err := s.queryGroups(ctx, req)
	if err != nil {
		return nil, "", err
	}

	content, err := export.AttendanceExcel(report.Flatten(groups, s.location))
	if err != nil {
		return nil, "", err
	}

	return content, "attendance.xlsx", nil
}

// ExportPDF implements report.ReportService.
func (s *reportServiceImpl) ExportPDF(ctx context.Context, req report.RangeRequest) ([]byte, string, error) {
	groups, err := s.queryGroups(ctx, req)
	if err != nil {
		return nil, "", err
	}

	title := fmt.Sprintf("%s to %s", req.From, req.To)
	content, err := export.AttendancePDF(title, report.Flatten(groups, s.location))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("export_%s_%s.pdf", req.From, req.To)
	return content, filename, nil
}
