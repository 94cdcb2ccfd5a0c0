package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/client"
	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/service"
)

const dateLayout = "2006-01-02"

// ScheduleHandler restaurants, shifts and the spreadsheet export.
type ScheduleHandler struct {
	schedule *service.ScheduleService
	export   *service.ExportService
	logger   *zap.Logger
}

func NewScheduleHandler(schedule *service.ScheduleService, export *service.ExportService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, export: export, logger: logger}
}

func (h *ScheduleHandler) Restaurants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	restaurants, err := h.schedule.Restaurants(r.Context())
	if err != nil {
		h.logger.Error("list restaurants failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(restaurants))
}

// Shifts dispatches /api/shifts by method. GET filters come from query
// params; update and cancel take the shift via ?id=.
func (h *ScheduleHandler) Shifts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filters := client.ShiftFilters{
			Date:         q.Get("date"),
			DateFrom:     q.Get("date_from"),
			DateTo:       q.Get("date_to"),
			RestaurantID: parseInt(q.Get("restaurant_id"), 0),
			EmployeeID:   parseInt(q.Get("employee_id"), 0),
		}
		shifts, err := h.schedule.Shifts(ctx, filters)
		if err != nil {
			h.logger.Error("list shifts failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(shifts))

	case http.MethodPost:
		var data domain.CreateShiftData
		if err := readBodyJSON(r, 1<<20, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		shift, err := h.schedule.CreateShift(ctx, data)
		if err != nil {
			h.logger.Error("create shift failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(shift))

	case http.MethodPut:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		var data domain.CreateShiftData
		if err := readBodyJSON(r, 1<<20, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		shift, err := h.schedule.UpdateShift(ctx, id, data)
		if err != nil {
			h.logger.Error("update shift failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(shift))

	case http.MethodDelete:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		if err := h.schedule.CancelShift(ctx, id); err != nil {
			h.logger.Error("cancel shift failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, OkMsg[any](nil, "shift cancelled"))

	default:
		methodNotAllowed(w)
	}
}

// Export streams the schedule workbook for ?date_from=..&date_to=..
// (YYYY-MM-DD). Without params it covers the current week, Monday to
// Sunday.
func (h *ScheduleHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	from, to, err := exportRange(r.URL.Query().Get("date_from"), r.URL.Query().Get("date_to"), time.Now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	export, err := h.export.ExportSchedule(r.Context(), from, to)
	if err != nil {
		h.logger.Error("schedule export failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename)
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}

func exportRange(fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	if fromStr == "" && toStr == "" {
		from := mondayOf(now)
		return from, from.AddDate(0, 0, 6), nil
	}
	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date_from must be %s", dateLayout)
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date_to must be %s", dateLayout)
	}
	return from, to, nil
}

func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
