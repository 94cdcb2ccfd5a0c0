package domain

import "strings"

// EmploymentType contract type of an employee.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentExtra    EmploymentType = "extra"
)

// ParseEmploymentType coerces a free-text value onto an EmploymentType.
// Anything that is not an exact (case-insensitive) match falls back to
// full_time; imports must never fail on a bad cell.
func ParseEmploymentType(raw string) EmploymentType {
	switch EmploymentType(strings.ToLower(strings.TrimSpace(raw))) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentExtra:
		return EmploymentType(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return EmploymentFullTime
	}
}

// ShiftPreference which period an employee prefers to work.
type ShiftPreference string

const (
	PreferMorning   ShiftPreference = "morning"
	PreferAfternoon ShiftPreference = "afternoon"
	PreferFlexible  ShiftPreference = "flexible"
)

// ParseShiftPreference accepts "am"/"morning" and "pm"/"afternoon";
// everything else means flexible.
func ParseShiftPreference(raw string) ShiftPreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "am", "morning":
		return PreferMorning
	case "pm", "afternoon":
		return PreferAfternoon
	default:
		return PreferFlexible
	}
}

// DaysOfWeek index 0 = Monday .. 6 = Sunday, matching the backend's
// days_off encoding.
var DaysOfWeek = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// AllowedPositions fixed position vocabulary; import tokens outside this
// set are dropped.
var AllowedPositions = []string{"kitchen", "service", "bar", "steward", "cashier", "runner", "security", "manager"}

// IsAllowedPosition reports whether pos belongs to the fixed vocabulary.
func IsAllowedPosition(pos string) bool {
	for _, p := range AllowedPositions {
		if p == pos {
			return true
		}
	}
	return false
}

// MissionStatus lifecycle of a mobile employee's mission.
type MissionStatus string

const (
	MissionProposed  MissionStatus = "proposed"
	MissionAccepted  MissionStatus = "accepted"
	MissionRefused   MissionStatus = "refused"
	MissionCompleted MissionStatus = "completed"
)

// LeaveType category of a leave request.
type LeaveType string

const (
	LeavePaid     LeaveType = "paid_leave"
	LeaveUnpaid   LeaveType = "unpaid_leave"
	LeaveSick     LeaveType = "sick_leave"
	LeaveTraining LeaveType = "training"
)
