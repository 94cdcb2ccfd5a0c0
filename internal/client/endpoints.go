package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tarpediem/krooster/internal/domain"
)

// ---- employees ----

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := c.call(ctx, http.MethodGet, "/api/employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, data domain.CreateEmployeeData) (*domain.Employee, error) {
	var employee domain.Employee
	if err := c.call(ctx, http.MethodPost, "/api/employees", nil, data, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, data domain.CreateEmployeeData) (*domain.Employee, error) {
	var employee domain.Employee
	query := map[string]string{"id": strconv.Itoa(id)}
	if err := c.call(ctx, http.MethodPut, "/api/employees/update", query, data, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	query := map[string]string{"id": strconv.Itoa(id)}
	return c.call(ctx, http.MethodDelete, "/api/employees/delete", query, nil, nil)
}

// ---- restaurants ----

func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := c.call(ctx, http.MethodGet, "/api/restaurants", nil, nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// ---- shifts ----

// ShiftFilters query parameters of the shifts listing.
type ShiftFilters struct {
	Date         string
	DateFrom     string
	DateTo       string
	RestaurantID int
	EmployeeID   int
}

func (f ShiftFilters) query() map[string]string {
	q := make(map[string]string)
	if f.Date != "" {
		q["date"] = f.Date
	}
	if f.DateFrom != "" {
		q["date_from"] = f.DateFrom
	}
	if f.DateTo != "" {
		q["date_to"] = f.DateTo
	}
	if f.RestaurantID != 0 {
		q["restaurant_id"] = strconv.Itoa(f.RestaurantID)
	}
	if f.EmployeeID != 0 {
		q["employee_id"] = strconv.Itoa(f.EmployeeID)
	}
	return q
}

// CacheKey stable cache key fragment for this filter combination.
func (f ShiftFilters) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s:%d:%d", f.Date, f.DateFrom, f.DateTo, f.RestaurantID, f.EmployeeID)
}

func (c *Client) ListShifts(ctx context.Context, filters ShiftFilters) ([]domain.Shift, error) {
	var shifts []domain.Shift
	if err := c.call(ctx, http.MethodGet, "/api/shifts", filters.query(), nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) CreateShift(ctx context.Context, data domain.CreateShiftData) (*domain.Shift, error) {
	var shift domain.Shift
	if err := c.call(ctx, http.MethodPost, "/api/shifts", nil, data, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) UpdateShift(ctx context.Context, id int, data domain.CreateShiftData) (*domain.Shift, error) {
	var shift domain.Shift
	query := map[string]string{"id": strconv.Itoa(id)}
	if err := c.call(ctx, http.MethodPut, "/api/shifts/update", query, data, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) CancelShift(ctx context.Context, id int) error {
	query := map[string]string{"id": strconv.Itoa(id)}
	return c.call(ctx, http.MethodDelete, "/api/shifts/delete", query, nil, nil)
}

// ---- leave ----

func (c *Client) ListLeave(ctx context.Context, employeeID int, status, leaveType string) ([]domain.LeaveRequest, error) {
	q := make(map[string]string)
	if employeeID != 0 {
		q["employee_id"] = strconv.Itoa(employeeID)
	}
	if status != "" {
		q["status"] = status
	}
	if leaveType != "" {
		q["type"] = leaveType
	}
	var leaves []domain.LeaveRequest
	if err := c.call(ctx, http.MethodGet, "/api/leave", q, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (c *Client) CreateLeave(ctx context.Context, data domain.CreateLeaveData) (*domain.LeaveRequest, error) {
	var leave domain.LeaveRequest
	if err := c.call(ctx, http.MethodPost, "/api/leave", nil, data, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (c *Client) ApproveLeave(ctx context.Context, id int, approvedBy string) (*domain.LeaveRequest, error) {
	if approvedBy == "" {
		approvedBy = "Manager"
	}
	var leave domain.LeaveRequest
	query := map[string]string{"id": strconv.Itoa(id)}
	body := map[string]string{"approved_by": approvedBy}
	if err := c.call(ctx, http.MethodPut, "/api/leave/approve", query, body, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (c *Client) RejectLeave(ctx context.Context, id int, reason string) (*domain.LeaveRequest, error) {
	if reason == "" {
		reason = "Request denied"
	}
	var leave domain.LeaveRequest
	query := map[string]string{"id": strconv.Itoa(id)}
	body := map[string]string{"reason": reason}
	if err := c.call(ctx, http.MethodPut, "/api/leave/reject", query, body, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (c *Client) GetLeaveBalance(ctx context.Context, employeeID int) (*domain.LeaveBalance, error) {
	var balance domain.LeaveBalance
	query := map[string]string{"employee_id": strconv.Itoa(employeeID)}
	if err := c.call(ctx, http.MethodGet, "/api/leave/balance", query, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// ---- missions ----

func (c *Client) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	var missions []domain.Mission
	if err := c.call(ctx, http.MethodGet, "/api/missions", nil, nil, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

func (c *Client) CreateMission(ctx context.Context, data domain.CreateMissionData) (*domain.Mission, error) {
	var mission domain.Mission
	if err := c.call(ctx, http.MethodPost, "/api/missions", nil, data, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (c *Client) UpdateMission(ctx context.Context, id int, data domain.CreateMissionData) (*domain.Mission, error) {
	var mission domain.Mission
	query := map[string]string{"id": strconv.Itoa(id)}
	if err := c.call(ctx, http.MethodPut, "/api/missions/update", query, data, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (c *Client) DeleteMission(ctx context.Context, id int) error {
	query := map[string]string{"id": strconv.Itoa(id)}
	return c.call(ctx, http.MethodDelete, "/api/missions/delete", query, nil, nil)
}

// setMissionStatus drives the accept/refuse/complete transitions, which
// share one upstream endpoint.
func (c *Client) setMissionStatus(ctx context.Context, id int, status domain.MissionStatus) (*domain.Mission, error) {
	var mission domain.Mission
	query := map[string]string{"id": strconv.Itoa(id)}
	body := map[string]string{"status": string(status)}
	if err := c.call(ctx, http.MethodPut, "/api/missions/status", query, body, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (c *Client) AcceptMission(ctx context.Context, id int) (*domain.Mission, error) {
	return c.setMissionStatus(ctx, id, domain.MissionAccepted)
}

func (c *Client) RefuseMission(ctx context.Context, id int) (*domain.Mission, error) {
	return c.setMissionStatus(ctx, id, domain.MissionRefused)
}

func (c *Client) CompleteMission(ctx context.Context, id int) (*domain.Mission, error) {
	return c.setMissionStatus(ctx, id, domain.MissionCompleted)
}

// ---- AI assistant (passthrough; schedule generation lives upstream) ----

func (c *Client) AskAI(ctx context.Context, question string) (*domain.AIResponse, error) {
	var out domain.AIResponse
	body := map[string]string{"question": question}
	if err := c.callRaw(ctx, http.MethodPost, "/api/ai/ask", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateSchedule(ctx context.Context, req domain.GenerateScheduleRequest) (*domain.GeneratedSchedule, error) {
	var out domain.GeneratedSchedule
	if err := c.callRaw(ctx, http.MethodPost, "/api/ai/generate-schedule", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
