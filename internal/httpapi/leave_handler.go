package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/service"
)

// LeaveHandler leave requests and their approval flow.
type LeaveHandler struct {
	schedule *service.ScheduleService
	logger   *zap.Logger
}

func NewLeaveHandler(schedule *service.ScheduleService, logger *zap.Logger) *LeaveHandler {
	return &LeaveHandler{schedule: schedule, logger: logger}
}

func (h *LeaveHandler) Leave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		requests, err := h.schedule.Leave(ctx,
			parseInt(q.Get("employee_id"), 0), q.Get("status"), q.Get("type"))
		if err != nil {
			h.logger.Error("list leave failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(requests))

	case http.MethodPost:
		var data domain.CreateLeaveData
		if err := readBodyJSON(r, 1<<20, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		req, err := h.schedule.CreateLeave(ctx, data)
		if err != nil {
			h.logger.Error("create leave failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(req))

	default:
		methodNotAllowed(w)
	}
}

func (h *LeaveHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	employeeID := parseInt(r.URL.Query().Get("employee_id"), 0)
	if employeeID == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("employee_id is required"))
		return
	}
	balance, err := h.schedule.LeaveBalance(r.Context(), employeeID)
	if err != nil {
		h.logger.Error("leave balance failed", zap.Int("employee_id", employeeID), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(balance))
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	id := parseInt(r.URL.Query().Get("id"), 0)
	if id == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("id is required"))
		return
	}
	var body struct {
		ApprovedBy string `json:"approved_by"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	req, err := h.schedule.ApproveLeave(r.Context(), id, body.ApprovedBy)
	if err != nil {
		h.logger.Error("approve leave failed", zap.Int("id", id), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(req))
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	id := parseInt(r.URL.Query().Get("id"), 0)
	if id == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("id is required"))
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	req, err := h.schedule.RejectLeave(r.Context(), id, body.Reason)
	if err != nil {
		h.logger.Error("reject leave failed", zap.Int("id", id), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(req))
}
