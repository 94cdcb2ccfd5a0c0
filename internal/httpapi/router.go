package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (no third-party router
// dependency needed for this route surface).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler supports the http.Handler interface (for pprof etc).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterEmployeeRoutes wires the employee CRUD plus the CSV bulk-import
// endpoints.
func (r *Router) RegisterEmployeeRoutes(h *EmployeeHandler) {
	r.Handle("/api/employees", h.Employees)
	r.Handle("/api/employees/import", h.Import)
	r.Handle("/api/employees/import-template", h.ImportTemplate)
}

// RegisterScheduleRoutes wires restaurants, shifts and the spreadsheet
// export.
func (r *Router) RegisterScheduleRoutes(h *ScheduleHandler) {
	r.Handle("/api/restaurants", h.Restaurants)
	r.Handle("/api/shifts", h.Shifts)
	r.Handle("/api/schedule/export", h.Export)
}

// RegisterLeaveRoutes wires leave requests and their approval flow.
func (r *Router) RegisterLeaveRoutes(h *LeaveHandler) {
	r.Handle("/api/leave", h.Leave)
	r.Handle("/api/leave/balance", h.Balance)
	r.Handle("/api/leave/approve", h.Approve)
	r.Handle("/api/leave/reject", h.Reject)
}

// RegisterMissionRoutes wires mission CRUD and the status transitions
// of a mobile employee's assignment.
func (r *Router) RegisterMissionRoutes(h *MissionHandler) {
	r.Handle("/api/missions", h.Missions)
	r.Handle("/api/missions/accept", h.Accept)
	r.Handle("/api/missions/refuse", h.Refuse)
	r.Handle("/api/missions/complete", h.Complete)
}

// RegisterAIRoutes wires the assistant passthrough endpoints.
func (r *Router) RegisterAIRoutes(h *AIHandler) {
	r.Handle("/api/ai/ask", h.Ask)
	r.Handle("/api/ai/generate-schedule", h.GenerateSchedule)
}

func (r *Router) RegisterHealthRoutes() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
	})
}
