package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/client"
	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/exporter"
)

// ScheduleReader the read slice of the API client the exporter needs.
type ScheduleReader interface {
	ListShifts(ctx context.Context, filters client.ShiftFilters) ([]domain.Shift, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// Export one generated workbook ready for download.
type Export struct {
	Filename string
	Data     []byte
}

// ExportService fetches schedule data and renders the xlsx workbook.
type ExportService struct {
	api    ScheduleReader
	logger *zap.Logger
}

func NewExportService(api ScheduleReader, logger *zap.Logger) *ExportService {
	return &ExportService{api: api, logger: logger}
}

// ExportSchedule builds the grid / per-restaurant / hours-summary workbook
// over [from, to]. Empty listings still produce a valid header-only file.
func (s *ExportService) ExportSchedule(ctx context.Context, from, to time.Time) (*Export, error) {
	shifts, err := s.api.ListShifts(ctx, client.ShiftFilters{
		DateFrom: from.Format("2006-01-02"),
		DateTo:   to.Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch shifts: %w", err)
	}
	restaurants, err := s.api.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}
	employees, err := s.api.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}

	sheets := exporter.BuildWorkbook(exporter.Options{
		Shifts:      shifts,
		Restaurants: restaurants,
		Employees:   employees,
		DateFrom:    from,
		DateTo:      to,
	})
	data, err := exporter.Encode(sheets)
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	s.logger.Info("schedule exported",
		zap.String("date_from", from.Format("2006-01-02")),
		zap.String("date_to", to.Format("2006-01-02")),
		zap.Int("shifts", len(shifts)),
		zap.Int("bytes", len(data)))

	return &Export{
		Filename: exporter.Filename(from, to),
		Data:     data,
	}, nil
}
