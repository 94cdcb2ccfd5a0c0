package exporter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Encode renders the sheet model into xlsx bytes. This is the only place
// that touches excelize; everything above works on the plain model.
func Encode(sheets []*Sheet) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() here: WriteTo needs the file open.

	// Equal styles collapse to one style id so the workbook stays small.
	styleIDs := make(map[Style]int)

	for i, sheet := range sheets {
		if i == 0 {
			// reuse the default sheet for the first one
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to rename sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
			}
		}

		if err := encodeSheet(f, sheet, styleIDs); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeSheet(f *excelize.File, sheet *Sheet, styleIDs map[Style]int) error {
	for row := 1; row <= sheet.MaxRow(); row++ {
		for col := 1; col <= sheet.MaxCol(); col++ {
			cell := sheet.Cell(row, col)
			if cell.Value == nil && cell.Style == (Style{}) {
				continue
			}

			name, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if cell.Value != nil {
				if err := f.SetCellValue(sheet.Name, name, cell.Value); err != nil {
					return fmt.Errorf("failed to set cell %s: %w", name, err)
				}
			}
			if cell.Style != (Style{}) {
				id, err := styleID(f, cell.Style, styleIDs)
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet.Name, name, name, id); err != nil {
					return fmt.Errorf("failed to style cell %s: %w", name, err)
				}
			}
		}
	}

	for _, m := range sheet.Merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol, m.FromRow)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol, m.ToRow)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.MergeCell(sheet.Name, from, to); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", from, to, err)
		}
	}

	for col, width := range sheet.ColWidths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	for row, height := range sheet.RowHeights {
		if err := f.SetRowHeight(sheet.Name, row, height); err != nil {
			return fmt.Errorf("failed to set row height: %w", err)
		}
	}

	if sheet.FrozenRows > 0 || sheet.FrozenCols > 0 {
		topLeft, err := excelize.CoordinatesToCellName(sheet.FrozenCols+1, sheet.FrozenRows+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetPanes(sheet.Name, &excelize.Panes{
			Freeze:      true,
			XSplit:      sheet.FrozenCols,
			YSplit:      sheet.FrozenRows,
			TopLeftCell: topLeft,
			ActivePane:  "bottomRight",
		}); err != nil {
			return fmt.Errorf("failed to freeze panes: %w", err)
		}
	}

	return nil
}

func styleID(f *excelize.File, style Style, cache map[Style]int) (int, error) {
	if id, ok := cache[style]; ok {
		return id, nil
	}

	xs := &excelize.Style{}
	if style.Bold || style.FontSize > 0 || style.FontARGB != "" {
		xs.Font = &excelize.Font{Bold: style.Bold, Size: style.FontSize, Color: rgb(style.FontARGB)}
	}
	if style.FillARGB != "" {
		xs.Fill = excelize.Fill{Type: "pattern", Color: []string{rgb(style.FillARGB)}, Pattern: 1}
	}
	if style.Border {
		border := rgb(colorBorder)
		xs.Border = []excelize.Border{
			{Type: "left", Color: border, Style: 1},
			{Type: "top", Color: border, Style: 1},
			{Type: "bottom", Color: border, Style: 1},
			{Type: "right", Color: border, Style: 1},
		}
	}
	if style.HAlign != "" || style.VAlign != "" || style.WrapText {
		xs.Alignment = &excelize.Alignment{
			Horizontal: style.HAlign,
			Vertical:   style.VAlign,
			WrapText:   style.WrapText,
		}
	}

	id, err := f.NewStyle(xs)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	cache[style] = id
	return id, nil
}

// rgb drops the alpha byte of an ARGB constant; excelize wants RRGGBB.
func rgb(argb string) string {
	if len(argb) == 8 {
		return argb[2:]
	}
	return argb
}
