package exporter

import (
	"fmt"
	"sort"
	"time"

	"github.com/tarpediem/krooster/internal/domain"
)

// buildRestaurantSheet detail sheet listing every shift of one restaurant,
// sorted by (date, start_time), with a trailing summary block.
func buildRestaurantSheet(restaurant domain.Restaurant, shifts []domain.Shift,
	names map[int]string, rules []PaletteRule) *Sheet {

	palette := paletteFor(restaurant.Name, rules)

	name := restaurant.Name
	if len(name) > 31 { // sheet name limit
		name = name[:31]
	}
	sheet := NewSheet(name)

	sheet.MergeCells(1, 1, 1, 6)
	sheet.SetCell(1, 1, fmt.Sprintf("📋 %s - Detailed Schedule", restaurant.Name), Style{
		Bold: true, FontSize: 14, FontARGB: colorHeaderText,
		FillARGB: palette.Header, HAlign: "center", VAlign: "center",
	})
	sheet.SetRowHeight(1, 30)

	headers := []string{"Date", "Day", "Employee", "Shift", "Position", "Status"}
	for idx, header := range headers {
		sheet.SetCell(2, idx+1, header, Style{
			Bold: true, FontARGB: colorHeaderText, FillARGB: colorHeaderBg, HAlign: "center",
		})
	}
	sheet.SetRowHeight(2, 25)

	widths := []float64{12, 10, 20, 18, 12, 12}
	for idx, w := range widths {
		sheet.SetColWidth(idx+1, w)
	}

	sorted := make([]domain.Shift, len(shifts))
	copy(sorted, shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	rowIndex := 3
	morningCount := 0
	for _, shift := range sorted {
		shiftDate, _ := time.Parse("2006-01-02", truncDate(shift.Date))
		morning := domain.IsMorning(shift.StartTime)
		if morning {
			morningCount++
		}

		bg := colorAfternoon
		if morning {
			bg = colorMorning
		}
		rowStyle := Style{FillARGB: bg, Border: true}

		sheet.SetCell(rowIndex, 1, shiftDate.Format("02/01"), rowStyle)

		dayStyle := rowStyle
		if isWeekend(shiftDate) {
			dayStyle.Bold = true
			dayStyle.FontARGB = colorWeekendDay
		}
		sheet.SetCell(rowIndex, 2, shiftDate.Format("Mon"), dayStyle)

		sheet.SetCell(rowIndex, 3, shiftEmployeeName(shift, names), rowStyle)
		sheet.SetCell(rowIndex, 4, fmt.Sprintf("%s - %s", truncTime(shift.StartTime), truncTime(shift.EndTime)), rowStyle)
		sheet.SetCell(rowIndex, 5, orDefault(shift.Position, "service"), rowStyle)
		sheet.SetCell(rowIndex, 6, orDefault(shift.Status, "scheduled"), rowStyle)

		rowIndex++
	}

	// Summary block
	rowIndex += 2
	sheet.SetCell(rowIndex, 1, "📊 Summary", Style{Bold: true, FontSize: 12})
	rowIndex++
	sheet.SetCell(rowIndex, 1, fmt.Sprintf("Total Shifts: %d", len(shifts)), Style{})
	rowIndex++
	sheet.SetCell(rowIndex, 1, fmt.Sprintf("Morning Shifts: %d", morningCount), Style{})
	rowIndex++
	sheet.SetCell(rowIndex, 1, fmt.Sprintf("Afternoon Shifts: %d", len(shifts)-morningCount), Style{})

	return sheet
}

func truncDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

func truncTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
