package domain

import "strconv"

// MorningCutoffHour shifts starting before this hour count as morning,
// everything from 14:00 on is afternoon. This single threshold drives the
// export color-coding and period bucketing.
const MorningCutoffHour = 14

// Shift a scheduled work period as served by the backend API.
type Shift struct {
	ID                int    `json:"id"`
	EmployeeID        int    `json:"employee_id"`
	EmployeeFirstName string `json:"employee_first_name,omitempty"`
	EmployeeLastName  string `json:"employee_last_name,omitempty"`
	RestaurantID      int    `json:"restaurant_id"`
	RestaurantName    string `json:"restaurant_name,omitempty"`
	Date              string `json:"date"`       // yyyy-MM-dd
	StartTime         string `json:"start_time"` // HH:MM, 24h
	EndTime           string `json:"end_time"`   // HH:MM, 24h
	BreakStart        string `json:"break_start,omitempty"`
	BreakDuration     int    `json:"break_duration,omitempty"`
	Position          string `json:"position"`
	IsMission         bool   `json:"is_mission"`
	Status            string `json:"status"` // scheduled / confirmed / cancelled
	Notes             string `json:"notes,omitempty"`
}

// CreateShiftData request body of the backend's create-shift endpoint.
type CreateShiftData struct {
	EmployeeID    int    `json:"employee_id"`
	RestaurantID  int    `json:"restaurant_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakStart    string `json:"break_start,omitempty"`
	BreakDuration int    `json:"break_duration,omitempty"`
	Position      string `json:"position"`
	IsMission     bool   `json:"is_mission,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// StartHour extracts the hour component of an "HH:MM" time string.
// Unparseable input yields 0, i.e. a morning shift.
func StartHour(startTime string) int {
	for i := 0; i < len(startTime); i++ {
		if startTime[i] == ':' {
			h, err := strconv.Atoi(startTime[:i])
			if err != nil {
				return 0
			}
			return h
		}
	}
	h, err := strconv.Atoi(startTime)
	if err != nil {
		return 0
	}
	return h
}

// IsMorning reports whether a shift starting at startTime falls in the
// morning period (start hour strictly below 14).
func IsMorning(startTime string) bool {
	return StartHour(startTime) < MorningCutoffHour
}
