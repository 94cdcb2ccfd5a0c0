package domain

// Employee staff member as served by the backend API.
type Employee struct {
	ID              int            `json:"id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Phone           string         `json:"phone,omitempty"`
	Email           string         `json:"email,omitempty"`
	RestaurantID    int            `json:"restaurant_id"`
	RestaurantName  string         `json:"restaurant_name,omitempty"`
	IsMobile        bool           `json:"is_mobile"`
	Positions       []string       `json:"positions"`
	Active          bool           `json:"active"`
	HireDate        string         `json:"hire_date,omitempty"`
	DaysOff         []int          `json:"days_off,omitempty"` // 0=Monday .. 6=Sunday
	PreferredShift  ShiftPreference `json:"preferred_shift,omitempty"`
	EmploymentType  EmploymentType `json:"employment_type"`
	MaxHoursPerWeek *int           `json:"max_hours_per_week,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
}

// CreateEmployeeData request body of the backend's create-employee endpoint.
// Also the shape every parsed CSV import row is submitted as.
type CreateEmployeeData struct {
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	RestaurantID    int             `json:"restaurant_id"`
	IsMobile        bool            `json:"is_mobile"`
	Positions       []string        `json:"positions"`
	HireDate        string          `json:"hire_date,omitempty"`
	Active          *bool           `json:"active,omitempty"`
	DaysOff         []int           `json:"days_off,omitempty"`
	PreferredShift  ShiftPreference `json:"preferred_shift,omitempty"`
	EmploymentType  EmploymentType  `json:"employment_type,omitempty"`
	MaxHoursPerWeek *int            `json:"max_hours_per_week,omitempty"`
}
