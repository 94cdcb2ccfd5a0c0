package domain

// Mission a mobile employee's temporary assignment to a restaurant other
// than their home site.
type Mission struct {
	ID                        int           `json:"id"`
	EmployeeID                int           `json:"employee_id"`
	EmployeeFirstName         string        `json:"employee_first_name,omitempty"`
	EmployeeLastName          string        `json:"employee_last_name,omitempty"`
	OriginRestaurantID        int           `json:"origin_restaurant_id"`
	OriginRestaurantName      string        `json:"origin_restaurant_name,omitempty"`
	DestinationRestaurantID   int           `json:"destination_restaurant_id"`
	DestinationRestaurantName string        `json:"destination_restaurant_name,omitempty"`
	StartDate                 string        `json:"start_date"`
	EndDate                   string        `json:"end_date"`
	Status                    MissionStatus `json:"status"`
	AccommodationPlanned      bool          `json:"accommodation_planned"`
	Notes                     string        `json:"notes,omitempty"`
	CreatedAt                 string        `json:"created_at,omitempty"`
}

// CreateMissionData request body of the backend's create-mission endpoint.
type CreateMissionData struct {
	EmployeeID              int    `json:"employee_id"`
	OriginRestaurantID      int    `json:"origin_restaurant_id"`
	DestinationRestaurantID int    `json:"destination_restaurant_id"`
	StartDate               string `json:"start_date"`
	EndDate                 string `json:"end_date"`
	AccommodationPlanned    bool   `json:"accommodation_planned,omitempty"`
	Notes                   string `json:"notes,omitempty"`
}
