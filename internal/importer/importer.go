// Package importer turns human-edited employee CSV files into
// create-employee records for the backend API.
//
// The format is deliberately forgiving: blank lines and '#' comment lines
// are skipped, unknown columns are ignored, and every recognized field
// degrades to a safe default instead of failing the row. The only way a
// data row is rejected is a missing first name.
package importer

import (
	"strconv"
	"strings"

	"github.com/tarpediem/krooster/internal/domain"
)

// ParseCSV parses raw template text into employee-creation records.
// Row order is preserved; rows with an empty first_name are dropped.
// It never returns an error: malformed cells fall back to defaults.
func ParseCSV(text string) []domain.CreateEmployeeData {
	lines := strings.Split(text, "\n")

	var headers []string
	rows := make([]domain.CreateEmployeeData, 0)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if headers == nil {
			headers = splitLine(trimmed)
			for i, h := range headers {
				headers[i] = strings.ToLower(strings.TrimSpace(h))
			}
			continue
		}

		values := splitLine(trimmed)
		// Right-pad short rows so every header has a value
		for len(values) < len(headers) {
			values = append(values, "")
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			fields[h] = strings.TrimSpace(values[i])
		}

		row, ok := mapRow(fields)
		if ok {
			rows = append(rows, row)
		}
	}

	return rows
}

// splitLine splits a comma-delimited line with a two-state quote toggle:
// a '"' flips the in-quotes state and commas inside quotes do not split.
// There is no escaped-quote support; this is intentionally not RFC 4180.
func splitLine(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())
	return out
}

// mapRow coerces one row's fields onto a CreateEmployeeData record.
// Returns ok=false only when first_name is empty.
func mapRow(fields map[string]string) (domain.CreateEmployeeData, bool) {
	firstName := strings.TrimSpace(fields["first_name"])
	if firstName == "" {
		return domain.CreateEmployeeData{}, false
	}

	row := domain.CreateEmployeeData{
		FirstName:       firstName,
		LastName:        fields["last_name"],
		Phone:           fields["phone"],
		Email:           fields["email"],
		RestaurantID:    parseRestaurant(fields["restaurant"]),
		IsMobile:        parseBool(fields["is_mobile"]),
		Positions:       parsePositions(fields["positions"]),
		EmploymentType:  domain.ParseEmploymentType(fields["employment_type"]),
		PreferredShift:  parsePreferredShift(fields),
		DaysOff:         parseDaysOff(fields),
		MaxHoursPerWeek: parseMaxHours(fields["max_hours_per_week"]),
	}
	return row, true
}

// parseRestaurant resolves a free-text restaurant reference to an id.
// "sathorn"/"2" map to Sathorn, "hua"/"1" and anything unrecognized map
// to Hua Hin.
func parseRestaurant(raw string) int {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(v, "sathorn") || v == "2":
		return 2
	case strings.Contains(v, "hua") || v == "1":
		return 1
	default:
		return 1
	}
}

// parsePositions filters comma-separated tokens against the fixed position
// vocabulary; an empty result defaults to service.
func parsePositions(raw string) []string {
	var positions []string
	for _, tok := range strings.Split(raw, ",") {
		p := strings.ToLower(strings.TrimSpace(tok))
		if p != "" && domain.IsAllowedPosition(p) {
			positions = append(positions, p)
		}
	}
	if len(positions) == 0 {
		return []string{"service"}
	}
	return positions
}

// parseDaysOff matches weekday tokens by 3-character prefix against the
// full lowercase day names (Monday=0). Unmatched tokens are dropped and
// duplicates are kept as given. Returns nil when nothing matched so the
// backend sees "unspecified" rather than an empty list.
func parseDaysOff(fields map[string]string) []int {
	raw, ok := fields["days_off"]
	if !ok || raw == "" {
		raw = fields["fixed_day_off"]
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var days []int
	for _, tok := range strings.Split(raw, ",") {
		prefix := strings.ToLower(strings.TrimSpace(tok))
		if prefix == "" {
			continue
		}
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		for i, day := range domain.DaysOfWeek {
			if strings.HasPrefix(day, prefix) {
				days = append(days, i)
				break
			}
		}
	}
	return days
}

// parsePreferredShift honors both the correct header and the legacy
// misspelled "prefered_shift" still present in circulating templates.
func parsePreferredShift(fields map[string]string) domain.ShiftPreference {
	raw, ok := fields["preferred_shift"]
	if !ok || raw == "" {
		raw = fields["prefered_shift"]
	}
	return domain.ParseShiftPreference(raw)
}

func parseMaxHours(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseBool(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	return v == "true" || v == "1"
}
