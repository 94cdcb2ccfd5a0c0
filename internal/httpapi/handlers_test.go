package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/client"
	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/service"
	"github.com/tarpediem/krooster/internal/store"
)

type stubBackend struct {
	employees   []domain.Employee
	restaurants []domain.Restaurant
	shifts      []domain.Shift
	missions    []domain.Mission
	created     []domain.CreateEmployeeData
}

func (s *stubBackend) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees, nil
}

func (s *stubBackend) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants, nil
}

func (s *stubBackend) ListShifts(ctx context.Context, filters client.ShiftFilters) ([]domain.Shift, error) {
	return s.shifts, nil
}

func (s *stubBackend) CreateEmployee(ctx context.Context, data domain.CreateEmployeeData) (*domain.Employee, error) {
	s.created = append(s.created, data)
	return &domain.Employee{ID: len(s.created), FirstName: data.FirstName}, nil
}

func (s *stubBackend) UpdateEmployee(ctx context.Context, id int, data domain.CreateEmployeeData) (*domain.Employee, error) {
	return &domain.Employee{ID: id, FirstName: data.FirstName}, nil
}

func (s *stubBackend) DeleteEmployee(ctx context.Context, id int) error { return nil }

func (s *stubBackend) CreateShift(ctx context.Context, data domain.CreateShiftData) (*domain.Shift, error) {
	return &domain.Shift{ID: 1}, nil
}

func (s *stubBackend) UpdateShift(ctx context.Context, id int, data domain.CreateShiftData) (*domain.Shift, error) {
	return &domain.Shift{ID: id}, nil
}

func (s *stubBackend) CancelShift(ctx context.Context, id int) error { return nil }

func (s *stubBackend) ListLeave(ctx context.Context, employeeID int, status, leaveType string) ([]domain.LeaveRequest, error) {
	return nil, nil
}

func (s *stubBackend) CreateLeave(ctx context.Context, data domain.CreateLeaveData) (*domain.LeaveRequest, error) {
	return &domain.LeaveRequest{ID: 1}, nil
}

func (s *stubBackend) ApproveLeave(ctx context.Context, id int, approvedBy string) (*domain.LeaveRequest, error) {
	return &domain.LeaveRequest{ID: id, Status: "approved"}, nil
}

func (s *stubBackend) RejectLeave(ctx context.Context, id int, reason string) (*domain.LeaveRequest, error) {
	return &domain.LeaveRequest{ID: id, Status: "rejected"}, nil
}

func (s *stubBackend) GetLeaveBalance(ctx context.Context, employeeID int) (*domain.LeaveBalance, error) {
	return &domain.LeaveBalance{EmployeeID: employeeID, AvailableBalance: 12}, nil
}

func (s *stubBackend) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	return s.missions, nil
}

func (s *stubBackend) CreateMission(ctx context.Context, data domain.CreateMissionData) (*domain.Mission, error) {
	return &domain.Mission{ID: 1, EmployeeID: data.EmployeeID, Status: domain.MissionProposed}, nil
}

func (s *stubBackend) UpdateMission(ctx context.Context, id int, data domain.CreateMissionData) (*domain.Mission, error) {
	return &domain.Mission{ID: id}, nil
}

func (s *stubBackend) DeleteMission(ctx context.Context, id int) error { return nil }

func (s *stubBackend) AcceptMission(ctx context.Context, id int) (*domain.Mission, error) {
	return &domain.Mission{ID: id, Status: domain.MissionAccepted}, nil
}

func (s *stubBackend) RefuseMission(ctx context.Context, id int) (*domain.Mission, error) {
	return &domain.Mission{ID: id, Status: domain.MissionRefused}, nil
}

func (s *stubBackend) CompleteMission(ctx context.Context, id int) (*domain.Mission, error) {
	return &domain.Mission{ID: id, Status: domain.MissionCompleted}, nil
}

func (s *stubBackend) AskAI(ctx context.Context, question string) (*domain.AIResponse, error) {
	return &domain.AIResponse{Success: true, Question: question, Response: "42"}, nil
}

func (s *stubBackend) GenerateSchedule(ctx context.Context, req domain.GenerateScheduleRequest) (*domain.GeneratedSchedule, error) {
	return &domain.GeneratedSchedule{Success: true}, nil
}

func newTestRouter(backend *stubBackend) *Router {
	logger := zap.NewNop()
	cache := store.NewMemoryKV()
	schedule := service.NewScheduleService(backend, cache, time.Minute, logger)
	imp := service.NewImportService(backend, cache, logger)
	exp := service.NewExportService(backend, logger)

	r := NewRouter(logger)
	r.RegisterEmployeeRoutes(NewEmployeeHandler(schedule, imp, logger))
	r.RegisterScheduleRoutes(NewScheduleHandler(schedule, exp, logger))
	r.RegisterLeaveRoutes(NewLeaveHandler(schedule, logger))
	r.RegisterMissionRoutes(NewMissionHandler(schedule, logger))
	r.RegisterAIRoutes(NewAIHandler(schedule, logger))
	r.RegisterHealthRoutes()
	return r
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) Result[json.RawMessage] {
	t.Helper()
	var out Result[json.RawMessage]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListEmployees(t *testing.T) {
	backend := &stubBackend{employees: []domain.Employee{{ID: 1, FirstName: "Som"}}}
	router := newTestRouter(backend)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeResult(t, rec)
	assert.True(t, res.Success)

	var employees []domain.Employee
	require.NoError(t, json.Unmarshal(res.Data, &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Som", employees[0].FirstName)
}

func TestCreateEmployee_RequiresFirstName(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	body := strings.NewReader(`{"last_name":"Kaew"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/employees", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeResult(t, rec)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "first_name")
}

func TestEmployees_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/employees", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestImport_RawBody(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(backend)

	csv := "first_name,last_name\nSom,Chai\nNarin,Kaew\n"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/employees/import", strings.NewReader(csv)))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result[service.ImportReport]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Data.Total)
	assert.Equal(t, 2, res.Data.Created)
	assert.Equal(t, "2/2 employees imported", res.Message)
	assert.Len(t, backend.created, 2)
}

func TestImport_MultipartFile(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(backend)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "employees.csv")
	require.NoError(t, err)
	fw.Write([]byte("first_name\nSom\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/employees/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, backend.created, 1)
	assert.Equal(t, "Som", backend.created[0].FirstName)
}

func TestImport_DryRunDoesNotCreate(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(backend)

	csv := "first_name\nSom\n"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/employees/import?dry_run=true", strings.NewReader(csv)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, backend.created)
}

func TestImport_NoValidRows(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/employees/import", strings.NewReader("# only a comment\n")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeResult(t, rec)
	assert.False(t, res.Success)
}

func TestImportTemplate_Download(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees/import-template", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "#"), "template starts with its comment block")
}

func TestExport_Workbook(t *testing.T) {
	backend := &stubBackend{
		restaurants: []domain.Restaurant{{ID: 1, Name: "Hua Hin"}},
		employees:   []domain.Employee{{ID: 1, FirstName: "Som", RestaurantID: 1}},
		shifts: []domain.Shift{{
			ID: 1, EmployeeID: 1, RestaurantID: 1,
			Date: "2026-01-05", StartTime: "10:00", EndTime: "18:00",
		}},
	}
	router := newTestRouter(backend)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/schedule/export?date_from=2026-01-05&date_to=2026-01-11", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=schedule_2026-01-05_to_2026-01-11.xlsx",
		rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestExport_InvalidDate(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/schedule/export?date_from=05/01/2026&date_to=2026-01-11", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeResult(t, rec)
	assert.Contains(t, res.Error, "date_from")
}

func TestExportRange_DefaultsToCurrentWeek(t *testing.T) {
	now := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC) // a Wednesday

	from, to, err := exportRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), to)
}

func TestLeaveApprove_RequiresID(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/leave/approve", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveApprove(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/leave/approve?id=7", strings.NewReader(`{"approved_by":"Manager"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result[domain.LeaveRequest]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 7, res.Data.ID)
	assert.Equal(t, "approved", res.Data.Status)
}

func TestLeaveBalance(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leave/balance?employee_id=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result[domain.LeaveBalance]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 3, res.Data.EmployeeID)
	assert.Equal(t, 12.0, res.Data.AvailableBalance)
}

func TestAIAsk_RequiresQuestion(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMission_RequiresEmployeeAndDestination(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/missions",
		strings.NewReader(`{"employee_id":3}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissionAccept(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/missions/accept?id=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result[domain.Mission]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 5, res.Data.ID)
	assert.Equal(t, domain.MissionAccepted, res.Data.Status)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&stubBackend{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeResult(t, rec)
	assert.True(t, res.Success)
}
