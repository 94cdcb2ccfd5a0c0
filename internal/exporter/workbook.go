package exporter

import (
	"fmt"
	"time"

	"github.com/tarpediem/krooster/internal/domain"
)

// Options inputs of one export run. All data comes from the backend's
// read endpoints; nothing is mutated.
type Options struct {
	Shifts      []domain.Shift
	Restaurants []domain.Restaurant
	Employees   []domain.Employee
	DateFrom    time.Time
	DateTo      time.Time

	// Today controls the "today" column highlight; zero means time.Now().
	// Tests pin it for deterministic output.
	Today time.Time

	// Palettes overrides DefaultPaletteRules when non-nil.
	Palettes []PaletteRule
}

// BuildWorkbook lays out the full workbook: grid sheet, one detail sheet
// per restaurant, hours summary. Given identical inputs the result is
// identical; no date-range validation happens here, an inverted range
// simply produces an empty date axis.
func BuildWorkbook(opts Options) []*Sheet {
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}
	if opts.Palettes == nil {
		opts.Palettes = DefaultPaletteRules
	}

	dates := dateAxis(opts.DateFrom, opts.DateTo)
	names := employeeNames(opts.Employees)

	sheets := make([]*Sheet, 0, len(opts.Restaurants)+2)
	sheets = append(sheets, buildGridSheet(opts, dates, names))

	for _, restaurant := range opts.Restaurants {
		var restoShifts []domain.Shift
		for _, s := range opts.Shifts {
			if s.RestaurantID == restaurant.ID {
				restoShifts = append(restoShifts, s)
			}
		}
		sheets = append(sheets, buildRestaurantSheet(restaurant, restoShifts, names, opts.Palettes))
	}

	sheets = append(sheets, buildHoursSummary(opts))
	return sheets
}

// dateAxis all days in [from, to] inclusive.
func dateAxis(from, to time.Time) []time.Time {
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func employeeNames(employees []domain.Employee) map[int]string {
	names := make(map[int]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FirstName
	}
	return names
}

// shiftEmployeeName first name shown in schedule cells; unassigned or
// unknown employees appear as TBD.
func shiftEmployeeName(s domain.Shift, names map[int]string) string {
	if s.EmployeeFirstName != "" {
		return s.EmployeeFirstName
	}
	if name, ok := names[s.EmployeeID]; ok && name != "" {
		return name
	}
	return "TBD"
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Filename export download name embedding the date range.
func Filename(from, to time.Time) string {
	return fmt.Sprintf("schedule_%s_to_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
}
