package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/service"
)

// AIHandler passthrough to the backend assistant.
type AIHandler struct {
	schedule *service.ScheduleService
	logger   *zap.Logger
}

func NewAIHandler(schedule *service.ScheduleService, logger *zap.Logger) *AIHandler {
	return &AIHandler{schedule: schedule, logger: logger}
}

func (h *AIHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var body struct {
		Question string `json:"question"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if body.Question == "" {
		writeJSON(w, http.StatusBadRequest, Fail("question is required"))
		return
	}
	resp, err := h.schedule.AskAI(r.Context(), body.Question)
	if err != nil {
		h.logger.Error("ai ask failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

func (h *AIHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req domain.GenerateScheduleRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		writeJSON(w, http.StatusBadRequest, Fail("start_date and end_date are required"))
		return
	}
	result, err := h.schedule.GenerateSchedule(r.Context(), req)
	if err != nil {
		h.logger.Error("schedule generation failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}
