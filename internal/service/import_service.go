// Package service orchestrates the import, export and passthrough flows
// on top of the backend API client and the read cache.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/importer"
	"github.com/tarpediem/krooster/internal/store"
)

// ErrNoValidRows the uploaded file yielded zero usable employee rows.
var ErrNoValidRows = errors.New("no valid employees found in file")

// EmployeeCreator the slice of the API client the importer needs
// (interface for test mocking).
type EmployeeCreator interface {
	CreateEmployee(ctx context.Context, data domain.CreateEmployeeData) (*domain.Employee, error)
}

// ImportError one failed row of a bulk import.
type ImportError struct {
	Row       int    `json:"row"` // position in the parsed result, 1-based
	FirstName string `json:"first_name"`
	Error     string `json:"error"`
}

// ImportReport outcome of one bulk import run. Partial success is normal:
// a failed row never blocks the remaining rows.
type ImportReport struct {
	BatchID string          `json:"batch_id"`
	Total   int             `json:"total"`
	Created int             `json:"created"`
	Failed  int             `json:"failed"`
	Errors  []ImportError   `json:"errors"`
	Rows    []domain.CreateEmployeeData `json:"rows,omitempty"`
}

// ImportService parses employee CSV uploads and submits them to the
// backend one create call at a time.
type ImportService struct {
	api    EmployeeCreator
	cache  store.KV
	logger *zap.Logger
}

func NewImportService(api EmployeeCreator, cache store.KV, logger *zap.Logger) *ImportService {
	return &ImportService{api: api, cache: cache, logger: logger}
}

// Preview parses without submitting, for the confirmation step in the UI.
func (s *ImportService) Preview(csvText string) (*ImportReport, error) {
	rows := importer.ParseCSV(csvText)
	if len(rows) == 0 {
		return nil, ErrNoValidRows
	}
	return &ImportReport{
		BatchID: uuid.NewString(),
		Total:   len(rows),
		Rows:    rows,
	}, nil
}

// Run parses and submits every row sequentially, awaiting each create
// before issuing the next. There is no rollback and no retry; failures
// are tallied and reported together.
func (s *ImportService) Run(ctx context.Context, csvText string) (*ImportReport, error) {
	rows := importer.ParseCSV(csvText)
	if len(rows) == 0 {
		return nil, ErrNoValidRows
	}

	report := &ImportReport{
		BatchID: uuid.NewString(),
		Total:   len(rows),
	}

	for i, row := range rows {
		if _, err := s.api.CreateEmployee(ctx, row); err != nil {
			s.logger.Warn("employee import row failed",
				zap.String("batch_id", report.BatchID),
				zap.Int("row", i+1),
				zap.String("first_name", row.FirstName),
				zap.Error(err))
			report.Failed++
			report.Errors = append(report.Errors, ImportError{
				Row:       i + 1,
				FirstName: row.FirstName,
				Error:     err.Error(),
			})
			continue
		}
		report.Created++
	}

	if report.Created > 0 && s.cache != nil {
		// the employees listing changed under the cache
		if err := s.cache.Del(ctx, employeesCacheKey); err != nil {
			s.logger.Warn("employee cache invalidation failed", zap.Error(err))
		}
	}

	s.logger.Info("employee import finished",
		zap.String("batch_id", report.BatchID),
		zap.Int("total", report.Total),
		zap.Int("created", report.Created),
		zap.Int("failed", report.Failed))

	return report, nil
}
