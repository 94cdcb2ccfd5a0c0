package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/importer"
	"github.com/tarpediem/krooster/internal/service"
)

const maxImportBytes = 10 << 20 // 10MB

// EmployeeHandler employee CRUD plus the CSV bulk-import flow.
type EmployeeHandler struct {
	schedule *service.ScheduleService
	importer *service.ImportService
	logger   *zap.Logger
}

func NewEmployeeHandler(schedule *service.ScheduleService, imp *service.ImportService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{schedule: schedule, importer: imp, logger: logger}
}

// Employees dispatches /api/employees by method. Update and delete take
// the target row via ?id=, matching the backend webhook contract.
func (h *EmployeeHandler) Employees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		employees, err := h.schedule.Employees(ctx)
		if err != nil {
			h.logger.Error("list employees failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(employees))

	case http.MethodPost:
		var data domain.CreateEmployeeData
		if err := readBodyJSON(r, maxImportBytes, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if data.FirstName == "" {
			writeJSON(w, http.StatusBadRequest, Fail("first_name is required"))
			return
		}
		emp, err := h.schedule.CreateEmployee(ctx, data)
		if err != nil {
			h.logger.Error("create employee failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(emp))

	case http.MethodPut:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		var data domain.CreateEmployeeData
		if err := readBodyJSON(r, maxImportBytes, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		emp, err := h.schedule.UpdateEmployee(ctx, id, data)
		if err != nil {
			h.logger.Error("update employee failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(emp))

	case http.MethodDelete:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		if err := h.schedule.DeleteEmployee(ctx, id); err != nil {
			h.logger.Error("delete employee failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, OkMsg[any](nil, "employee deleted"))

	default:
		methodNotAllowed(w)
	}
}

// Import accepts a CSV upload, either as a multipart "file" field or as
// a raw text body, and creates the parsed employees one by one.
// ?dry_run=true parses and reports without creating anything.
func (h *EmployeeHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	csvText, err := readUploadText(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	if r.URL.Query().Get("dry_run") == "true" {
		report, err := h.importer.Preview(csvText)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(report))
		return
	}

	report, err := h.importer.Run(r.Context(), csvText)
	if err != nil {
		if errors.Is(err, service.ErrNoValidRows) {
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		h.logger.Error("employee import failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}

	msg := fmt.Sprintf("%d/%d employees imported", report.Created, report.Total)
	writeJSON(w, http.StatusOK, OkMsg(report, msg))
}

// ImportTemplate serves the annotated CSV template as a download.
func (h *EmployeeHandler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+importer.TemplateFilename)
	w.WriteHeader(http.StatusOK)
	w.Write(importer.Template())
}

// readUploadText pulls the CSV text out of the request: the multipart
// "file" field when present, the raw body otherwise.
func readUploadText(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return "", errors.New("failed to parse form")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", errors.New("file not found in request")
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if err != nil {
			return "", errors.New("failed to read file")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		return "", errors.New("failed to read body")
	}
	if len(data) == 0 {
		return "", errors.New("empty upload")
	}
	return string(data), nil
}
