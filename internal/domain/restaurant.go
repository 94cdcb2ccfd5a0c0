package domain

// Restaurant one of the group's sites. The backend currently serves two:
// 1 = Hua Hin, 2 = Sathorn.
type Restaurant struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location,omitempty"`
	Address      string   `json:"address,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	ClosingHours string   `json:"closing_hours,omitempty"`
	ClosedDates  []string `json:"closed_dates,omitempty"`
}
