package domain

// LeaveRequest an absence request as served by the backend API.
type LeaveRequest struct {
	ID                int       `json:"id"`
	EmployeeID        int       `json:"employee_id"`
	EmployeeFirstName string    `json:"employee_first_name,omitempty"`
	EmployeeLastName  string    `json:"employee_last_name,omitempty"`
	Type              LeaveType `json:"type"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Status            string    `json:"status"` // requested / approved / rejected
	Comment           string    `json:"comment,omitempty"`
	ValidatedBy       string    `json:"validated_by,omitempty"`
	ValidationDate    string    `json:"validation_date,omitempty"`
	DaysRequested     int       `json:"days_requested,omitempty"`
}

// CreateLeaveData request body of the backend's create-leave endpoint.
type CreateLeaveData struct {
	EmployeeID int    `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Comment    string `json:"comment,omitempty"`
}

// LeaveBalance accrued/taken day counters for one employee and year.
type LeaveBalance struct {
	EmployeeID       int     `json:"employee_id"`
	LastName         string  `json:"last_name"`
	FirstName        string  `json:"first_name"`
	DaysAccrued      float64 `json:"days_accrued"`
	DaysTaken        float64 `json:"days_taken"`
	AvailableBalance float64 `json:"available_balance"`
	Year             int     `json:"year"`
}
