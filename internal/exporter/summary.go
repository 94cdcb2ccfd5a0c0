package exporter

import (
	"fmt"
	"sort"

	"github.com/tarpediem/krooster/internal/domain"
)

// Overtime tiers of the hours summary, in integer hours per range.
const (
	normalHoursMax  = 40
	warningHoursMax = 48
)

type employeeHours struct {
	shifts int
	hours  int
}

// buildHoursSummary per-employee shift counts and hour totals over the
// export range, sorted by hours descending, color-coded by overtime tier.
//
// Hours are summed as endHour-startHour on whole hours: the minute part
// is ignored, so a 10:00-18:30 shift counts 8h. That mirrors the reports
// managers have been reconciling against; do not "fix" it here without
// changing the downstream payroll checks too.
func buildHoursSummary(opts Options) *Sheet {
	sheet := NewSheet("Hours Summary")

	sheet.MergeCells(1, 1, 1, 6)
	title := fmt.Sprintf("📊 Hours Summary - %s to %s",
		opts.DateFrom.Format("Jan 2"), opts.DateTo.Format("Jan 2, 2006"))
	sheet.SetCell(1, 1, title, Style{
		Bold: true, FontSize: 14, FontARGB: colorHeaderText,
		FillARGB: colorHeaderBg, HAlign: "center", VAlign: "center",
	})
	sheet.SetRowHeight(1, 30)

	headers := []string{"Employee", "Restaurant", "Shifts", "Total Hours", "Avg/Day", "Type"}
	for idx, header := range headers {
		sheet.SetCell(2, idx+1, header, Style{
			Bold: true, FontARGB: colorHeaderText, FillARGB: colorHeaderBg, HAlign: "center",
		})
	}
	sheet.SetRowHeight(2, 25)

	widths := []float64{20, 25, 10, 12, 10, 12}
	for idx, w := range widths {
		sheet.SetColWidth(idx+1, w)
	}

	totals := make(map[int]*employeeHours)
	for _, shift := range opts.Shifts {
		if shift.EmployeeID == 0 {
			continue
		}
		hours := domain.StartHour(shift.EndTime) - domain.StartHour(shift.StartTime)
		cur, ok := totals[shift.EmployeeID]
		if !ok {
			cur = &employeeHours{}
			totals[shift.EmployeeID] = cur
		}
		cur.shifts++
		cur.hours += hours
	}

	restaurantNames := make(map[int]string, len(opts.Restaurants))
	for _, r := range opts.Restaurants {
		restaurantNames[r.ID] = r.Name
	}

	// Only employees with at least one shift, hours descending. Stable
	// sort keeps ties in input order so reruns produce identical sheets.
	ranked := make([]domain.Employee, 0, len(totals))
	for _, e := range opts.Employees {
		if _, ok := totals[e.ID]; ok {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i].ID].hours > totals[ranked[j].ID].hours
	})

	rowIndex := 3
	for _, employee := range ranked {
		data := totals[employee.ID]

		restaurantName := restaurantNames[employee.RestaurantID]
		palette := paletteFor(restaurantName, opts.Palettes)
		if restaurantName == "" {
			restaurantName = "N/A"
		}

		fill := palette.Light
		switch {
		case data.hours > warningHoursMax:
			fill = colorOvertime
		case data.hours > normalHoursMax:
			fill = colorWarning
		}
		rowStyle := Style{FillARGB: fill, Border: true}

		fullName := employee.FirstName
		if employee.LastName != "" {
			fullName += " " + employee.LastName
		}

		sheet.SetCell(rowIndex, 1, fullName, rowStyle)
		sheet.SetCell(rowIndex, 2, restaurantName, rowStyle)
		sheet.SetCell(rowIndex, 3, data.shifts, rowStyle)

		hoursStyle := rowStyle
		if data.hours > warningHoursMax {
			hoursStyle.Bold = true
			hoursStyle.FontARGB = colorWeekendDay
		}
		sheet.SetCell(rowIndex, 4, data.hours, hoursStyle)

		avg := "0"
		if data.shifts > 0 {
			avg = fmt.Sprintf("%.1f", float64(data.hours)/float64(data.shifts))
		}
		sheet.SetCell(rowIndex, 5, avg, rowStyle)

		employmentType := string(employee.EmploymentType)
		if employmentType == "" {
			employmentType = string(domain.EmploymentFullTime)
		}
		sheet.SetCell(rowIndex, 6, employmentType, rowStyle)

		rowIndex++
	}

	// Legend
	rowIndex += 2
	sheet.SetCell(rowIndex, 1, "🔵 Legend:", Style{Bold: true})
	rowIndex++

	legend := []struct {
		color string
		text  string
	}{
		{"FFE8F5E9", "Normal hours (≤40h)"},
		{colorWarning, "Warning (40-48h)"},
		{colorOvertime, "Overtime (>48h)"},
	}
	for _, item := range legend {
		sheet.SetCell(rowIndex, 1, "", Style{FillARGB: item.color})
		sheet.SetCell(rowIndex, 2, item.text, Style{})
		rowIndex++
	}

	return sheet
}
