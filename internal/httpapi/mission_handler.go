package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/service"
)

// MissionHandler temporary cross-restaurant assignments for mobile
// employees.
type MissionHandler struct {
	schedule *service.ScheduleService
	logger   *zap.Logger
}

func NewMissionHandler(schedule *service.ScheduleService, logger *zap.Logger) *MissionHandler {
	return &MissionHandler{schedule: schedule, logger: logger}
}

func (h *MissionHandler) Missions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		missions, err := h.schedule.Missions(ctx)
		if err != nil {
			h.logger.Error("list missions failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(missions))

	case http.MethodPost:
		var data domain.CreateMissionData
		if err := readBodyJSON(r, 1<<20, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if data.EmployeeID == 0 || data.DestinationRestaurantID == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("employee_id and destination_restaurant_id are required"))
			return
		}
		mission, err := h.schedule.CreateMission(ctx, data)
		if err != nil {
			h.logger.Error("create mission failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(mission))

	case http.MethodPut:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		var data domain.CreateMissionData
		if err := readBodyJSON(r, 1<<20, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		mission, err := h.schedule.UpdateMission(ctx, id, data)
		if err != nil {
			h.logger.Error("update mission failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, Ok(mission))

	case http.MethodDelete:
		id := parseInt(r.URL.Query().Get("id"), 0)
		if id == 0 {
			writeJSON(w, http.StatusBadRequest, Fail("id is required"))
			return
		}
		if err := h.schedule.DeleteMission(ctx, id); err != nil {
			h.logger.Error("delete mission failed", zap.Int("id", id), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, OkMsg[any](nil, "mission deleted"))

	default:
		methodNotAllowed(w)
	}
}

func (h *MissionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.schedule.AcceptMission)
}

func (h *MissionHandler) Refuse(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.schedule.RefuseMission)
}

func (h *MissionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.schedule.CompleteMission)
}

func (h *MissionHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int) (*domain.Mission, error)) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	id := parseInt(r.URL.Query().Get("id"), 0)
	if id == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("id is required"))
		return
	}
	mission, err := fn(r.Context(), id)
	if err != nil {
		h.logger.Error("mission transition failed", zap.Int("id", id), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(mission))
}
