package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/client"
	"github.com/tarpediem/krooster/internal/domain"
	"github.com/tarpediem/krooster/internal/store"
)

// Cache keys for upstream listings. Shift keys embed the filter set, so
// invalidation scans the prefix.
const (
	employeesCacheKey   = "krooster:employees"
	restaurantsCacheKey = "krooster:restaurants"
	missionsCacheKey    = "krooster:missions"
	shiftsCachePrefix   = "krooster:shifts:"
	leaveCachePrefix    = "krooster:leave:"
)

// BackendAPI everything the passthrough layer calls on the API client
// (interface for test mocking).
type BackendAPI interface {
	ScheduleReader
	EmployeeCreator
	UpdateEmployee(ctx context.Context, id int, data domain.CreateEmployeeData) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
	CreateShift(ctx context.Context, data domain.CreateShiftData) (*domain.Shift, error)
	UpdateShift(ctx context.Context, id int, data domain.CreateShiftData) (*domain.Shift, error)
	CancelShift(ctx context.Context, id int) error
	ListLeave(ctx context.Context, employeeID int, status, leaveType string) ([]domain.LeaveRequest, error)
	CreateLeave(ctx context.Context, data domain.CreateLeaveData) (*domain.LeaveRequest, error)
	ApproveLeave(ctx context.Context, id int, approvedBy string) (*domain.LeaveRequest, error)
	RejectLeave(ctx context.Context, id int, reason string) (*domain.LeaveRequest, error)
	GetLeaveBalance(ctx context.Context, employeeID int) (*domain.LeaveBalance, error)
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	CreateMission(ctx context.Context, data domain.CreateMissionData) (*domain.Mission, error)
	UpdateMission(ctx context.Context, id int, data domain.CreateMissionData) (*domain.Mission, error)
	DeleteMission(ctx context.Context, id int) error
	AcceptMission(ctx context.Context, id int) (*domain.Mission, error)
	RefuseMission(ctx context.Context, id int) (*domain.Mission, error)
	CompleteMission(ctx context.Context, id int) (*domain.Mission, error)
	AskAI(ctx context.Context, question string) (*domain.AIResponse, error)
	GenerateSchedule(ctx context.Context, req domain.GenerateScheduleRequest) (*domain.GeneratedSchedule, error)
}

// ScheduleService read-through cached passthrough to the backend API.
// Reads serve from the KV cache until TTL or a write invalidates them;
// writes always go straight upstream.
type ScheduleService struct {
	api    BackendAPI
	cache  store.KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewScheduleService(api BackendAPI, cache store.KV, ttl time.Duration, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{api: api, cache: cache, ttl: ttl, logger: logger}
}

// cached runs fetch on a cache miss and stores the JSON-encoded result.
// Cache trouble is logged and bypassed, never surfaced to the caller.
func cached[T any](ctx context.Context, s *ScheduleService, key string, fetch func() (T, error)) (T, error) {
	var out T
	if raw, err := s.cache.Get(ctx, key); err == nil {
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, nil
		}
		// un-decodable entry: drop it and fall through to upstream
		_ = s.cache.Del(ctx, key)
	} else if err != store.ErrMiss {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	out, err := fetch()
	if err != nil {
		return out, err
	}
	if encoded, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// invalidate removes exact keys plus everything under the given prefixes.
func (s *ScheduleService) invalidate(ctx context.Context, keys []string, prefixes ...string) {
	for _, prefix := range prefixes {
		found, err := s.cache.ScanKeys(ctx, prefix+"*")
		if err != nil {
			s.logger.Warn("cache scan failed", zap.String("prefix", prefix), zap.Error(err))
			continue
		}
		keys = append(keys, found...)
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

// ---- employees ----

func (s *ScheduleService) Employees(ctx context.Context) ([]domain.Employee, error) {
	return cached(ctx, s, employeesCacheKey, func() ([]domain.Employee, error) {
		return s.api.ListEmployees(ctx)
	})
}

func (s *ScheduleService) CreateEmployee(ctx context.Context, data domain.CreateEmployeeData) (*domain.Employee, error) {
	employee, err := s.api.CreateEmployee(ctx, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{employeesCacheKey})
	return employee, nil
}

func (s *ScheduleService) UpdateEmployee(ctx context.Context, id int, data domain.CreateEmployeeData) (*domain.Employee, error) {
	employee, err := s.api.UpdateEmployee(ctx, id, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{employeesCacheKey}, shiftsCachePrefix)
	return employee, nil
}

func (s *ScheduleService) DeleteEmployee(ctx context.Context, id int) error {
	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, []string{employeesCacheKey}, shiftsCachePrefix)
	return nil
}

// ---- restaurants ----

func (s *ScheduleService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return cached(ctx, s, restaurantsCacheKey, func() ([]domain.Restaurant, error) {
		return s.api.ListRestaurants(ctx)
	})
}

// ---- shifts ----

func (s *ScheduleService) Shifts(ctx context.Context, filters client.ShiftFilters) ([]domain.Shift, error) {
	return cached(ctx, s, shiftsCachePrefix+filters.CacheKey(), func() ([]domain.Shift, error) {
		return s.api.ListShifts(ctx, filters)
	})
}

func (s *ScheduleService) CreateShift(ctx context.Context, data domain.CreateShiftData) (*domain.Shift, error) {
	shift, err := s.api.CreateShift(ctx, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, nil, shiftsCachePrefix)
	return shift, nil
}

func (s *ScheduleService) UpdateShift(ctx context.Context, id int, data domain.CreateShiftData) (*domain.Shift, error) {
	shift, err := s.api.UpdateShift(ctx, id, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, nil, shiftsCachePrefix)
	return shift, nil
}

func (s *ScheduleService) CancelShift(ctx context.Context, id int) error {
	if err := s.api.CancelShift(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, nil, shiftsCachePrefix)
	return nil
}

// ---- leave ----

func (s *ScheduleService) Leave(ctx context.Context, employeeID int, status, leaveType string) ([]domain.LeaveRequest, error) {
	key := fmt.Sprintf("%s%d:%s:%s", leaveCachePrefix, employeeID, status, leaveType)
	return cached(ctx, s, key, func() ([]domain.LeaveRequest, error) {
		return s.api.ListLeave(ctx, employeeID, status, leaveType)
	})
}

func (s *ScheduleService) CreateLeave(ctx context.Context, data domain.CreateLeaveData) (*domain.LeaveRequest, error) {
	leave, err := s.api.CreateLeave(ctx, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, nil, leaveCachePrefix)
	return leave, nil
}

func (s *ScheduleService) ApproveLeave(ctx context.Context, id int, approvedBy string) (*domain.LeaveRequest, error) {
	leave, err := s.api.ApproveLeave(ctx, id, approvedBy)
	if err != nil {
		return nil, err
	}
	// approved leave may remove generated shifts upstream
	s.invalidate(ctx, nil, leaveCachePrefix, shiftsCachePrefix)
	return leave, nil
}

func (s *ScheduleService) RejectLeave(ctx context.Context, id int, reason string) (*domain.LeaveRequest, error) {
	leave, err := s.api.RejectLeave(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, nil, leaveCachePrefix)
	return leave, nil
}

// LeaveBalance always hits the backend: the counters change whenever
// any leave request settles, so caching them is not worth the staleness.
func (s *ScheduleService) LeaveBalance(ctx context.Context, employeeID int) (*domain.LeaveBalance, error) {
	return s.api.GetLeaveBalance(ctx, employeeID)
}

// ---- missions ----

func (s *ScheduleService) Missions(ctx context.Context) ([]domain.Mission, error) {
	return cached(ctx, s, missionsCacheKey, func() ([]domain.Mission, error) {
		return s.api.ListMissions(ctx)
	})
}

func (s *ScheduleService) CreateMission(ctx context.Context, data domain.CreateMissionData) (*domain.Mission, error) {
	mission, err := s.api.CreateMission(ctx, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{missionsCacheKey})
	return mission, nil
}

func (s *ScheduleService) UpdateMission(ctx context.Context, id int, data domain.CreateMissionData) (*domain.Mission, error) {
	mission, err := s.api.UpdateMission(ctx, id, data)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{missionsCacheKey})
	return mission, nil
}

func (s *ScheduleService) DeleteMission(ctx context.Context, id int) error {
	if err := s.api.DeleteMission(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, []string{missionsCacheKey}, shiftsCachePrefix)
	return nil
}

// Mission status changes also touch shifts: an accepted mission gains a
// shift at the host restaurant upstream.
func (s *ScheduleService) AcceptMission(ctx context.Context, id int) (*domain.Mission, error) {
	mission, err := s.api.AcceptMission(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{missionsCacheKey}, shiftsCachePrefix)
	return mission, nil
}

func (s *ScheduleService) RefuseMission(ctx context.Context, id int) (*domain.Mission, error) {
	mission, err := s.api.RefuseMission(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{missionsCacheKey})
	return mission, nil
}

func (s *ScheduleService) CompleteMission(ctx context.Context, id int) (*domain.Mission, error) {
	mission, err := s.api.CompleteMission(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, []string{missionsCacheKey}, shiftsCachePrefix)
	return mission, nil
}

// ---- AI passthrough ----

func (s *ScheduleService) AskAI(ctx context.Context, question string) (*domain.AIResponse, error) {
	return s.api.AskAI(ctx, question)
}

func (s *ScheduleService) GenerateSchedule(ctx context.Context, req domain.GenerateScheduleRequest) (*domain.GeneratedSchedule, error) {
	out, err := s.api.GenerateSchedule(ctx, req)
	if err != nil {
		return nil, err
	}
	if out.ShiftsCreated > 0 {
		s.invalidate(ctx, nil, shiftsCachePrefix)
	}
	return out, nil
}
