package domain

import "encoding/json"

// AIResponse answer of the backend's LLM assistant endpoint. The schedule
// generation itself happens entirely on the backend side; this service only
// relays the payloads.
type AIResponse struct {
	Success   bool            `json:"success"`
	Question  string          `json:"question"`
	Response  string          `json:"response"`
	Model     string          `json:"model"`
	Timestamp string          `json:"timestamp"`
	Action    json.RawMessage `json:"action,omitempty"`
}

// GenerateScheduleRequest request body of the generate-schedule endpoint.
type GenerateScheduleRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Requirements string `json:"requirements,omitempty"`
	CreateShifts bool   `json:"create_shifts"`
}

// GeneratedSchedule backend's schedule-generation result, passed through
// verbatim apart from envelope handling.
type GeneratedSchedule struct {
	Success       bool            `json:"success"`
	Period        SchedulePeriod  `json:"period"`
	Planning      json.RawMessage `json:"planning"`
	Alerts        []string        `json:"alerts"`
	Suggestions   []string        `json:"suggestions"`
	ShiftsCreated int             `json:"shifts_created,omitempty"`
}

type SchedulePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
