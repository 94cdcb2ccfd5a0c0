package exporter

import (
	"strconv"
	"strings"
	"time"

	"github.com/tarpediem/krooster/internal/domain"
)

// buildGridSheet one row pair (Morning, Afternoon) per restaurant, one
// column per date.
func buildGridSheet(opts Options, dates []time.Time, names map[int]string) *Sheet {
	sheet := NewSheet("Schedule Grid")
	sheet.FrozenRows = 2
	sheet.FrozenCols = 1

	// Title row spanning the whole date axis
	sheet.MergeCells(1, 1, 1, len(dates)+1)
	sheet.SetCell(1, 1, "📅 SCHEDULE OVERVIEW", Style{
		Bold: true, FontSize: 16, FontARGB: colorHeaderText,
		FillARGB: colorHeaderBg, HAlign: "center", VAlign: "center",
	})
	sheet.SetRowHeight(1, 30)

	// Date header row
	sheet.SetCell(2, 1, "Restaurant", Style{
		Bold: true, FontARGB: colorHeaderText, FillARGB: colorHeaderBg,
	})
	for idx, date := range dates {
		style := Style{
			Bold: true, FontARGB: colorHeaderText, FillARGB: colorHeaderBg,
			HAlign: "center", VAlign: "center", WrapText: true,
		}
		if isWeekend(date) {
			style.FillARGB = colorWeekendHdr
		}
		// today wins over the weekend highlight
		if sameDay(date, opts.Today) {
			style.FillARGB = colorToday
			style.FontARGB = "FF000000"
		}
		label := date.Format("Mon") + "\n" + strconv.Itoa(date.Day())
		sheet.SetCell(2, idx+2, label, style)
	}
	sheet.SetRowHeight(2, 35)

	sheet.SetColWidth(1, 25)
	for idx := range dates {
		sheet.SetColWidth(idx+2, 18)
	}

	rowIndex := 3
	for _, restaurant := range opts.Restaurants {
		palette := paletteFor(restaurant.Name, opts.Palettes)

		// Restaurant header row
		sheet.MergeCells(rowIndex, 1, rowIndex, len(dates)+1)
		sheet.SetCell(rowIndex, 1, "🏪 "+strings.ToUpper(restaurant.Name), Style{
			Bold: true, FontSize: 12, FontARGB: colorHeaderText, FillARGB: palette.Header,
		})
		sheet.SetRowHeight(rowIndex, 25)
		rowIndex++

		writePeriodRow(sheet, rowIndex, "☀️ Morning (10:00-18:00)", colorMorning, palette.Light,
			dates, opts.Shifts, restaurant.ID, true, names)
		rowIndex++

		writePeriodRow(sheet, rowIndex, "🌙 Afternoon (15:00-23:00)", colorAfternoon, palette.Medium,
			dates, opts.Shifts, restaurant.ID, false, names)
		rowIndex++

		// spacer row
		rowIndex++
	}

	return sheet
}

// writePeriodRow fills one Morning or Afternoon row: the label cell plus
// one newline-joined staff cell per date.
func writePeriodRow(sheet *Sheet, row int, label, labelFill, cellFill string,
	dates []time.Time, shifts []domain.Shift, restaurantID int, morning bool, names map[int]string) {

	sheet.SetCell(row, 1, label, Style{Bold: true, FillARGB: labelFill})

	for idx, date := range dates {
		dateStr := date.Format("2006-01-02")

		var staff []string
		for _, s := range shifts {
			if s.RestaurantID != restaurantID {
				continue
			}
			if len(s.Date) < 10 || s.Date[:10] != dateStr {
				continue
			}
			if domain.IsMorning(s.StartTime) != morning {
				continue
			}
			staff = append(staff, shiftEmployeeName(s, names))
		}

		sheet.SetCell(row, idx+2, strings.Join(staff, "\n"), Style{
			FillARGB: cellFill, Border: true, VAlign: "top", WrapText: true,
		})
	}
	sheet.SetRowHeight(row, 60)
}
