// Package exporter builds the multi-sheet schedule workbook: a combined
// grid view, one detail sheet per restaurant, and an hours summary.
//
// Layout is computed on a plain in-memory sheet model so it can be tested
// cell by cell; the excelize binding happens only in Encode.
package exporter

// Style formatting metadata of a single cell. Colors are ARGB hex as in
// the exported documents ("FF1A237E").
type Style struct {
	FillARGB string
	Bold     bool
	FontSize float64
	FontARGB string
	Border   bool
	HAlign   string
	VAlign   string
	WrapText bool
}

// Cell one value with its formatting.
type Cell struct {
	Value any
	Style Style
}

// Merge a rectangular merged region, 1-indexed inclusive.
type Merge struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Sheet an independently laid-out 2-D cell grid. Rows and columns are
// 1-indexed to match spreadsheet coordinates.
type Sheet struct {
	Name       string
	FrozenRows int
	FrozenCols int
	ColWidths  map[int]float64
	RowHeights map[int]float64
	Merges     []Merge

	cells  map[[2]int]Cell
	maxRow int
	maxCol int
}

func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:       name,
		ColWidths:  make(map[int]float64),
		RowHeights: make(map[int]float64),
		cells:      make(map[[2]int]Cell),
	}
}

// SetCell places a value with formatting at (row, col).
func (s *Sheet) SetCell(row, col int, value any, style Style) {
	s.cells[[2]int{row, col}] = Cell{Value: value, Style: style}
	if row > s.maxRow {
		s.maxRow = row
	}
	if col > s.maxCol {
		s.maxCol = col
	}
}

// Cell returns the cell at (row, col); absent cells read as zero cells.
func (s *Sheet) Cell(row, col int) Cell {
	return s.cells[[2]int{row, col}]
}

// Value returns just the cell value at (row, col).
func (s *Sheet) Value(row, col int) any {
	return s.cells[[2]int{row, col}].Value
}

// MergeCells records a merged region spanning the given inclusive range.
func (s *Sheet) MergeCells(fromRow, fromCol, toRow, toCol int) {
	s.Merges = append(s.Merges, Merge{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol})
}

func (s *Sheet) SetColWidth(col int, width float64) {
	s.ColWidths[col] = width
	if col > s.maxCol {
		s.maxCol = col
	}
}

func (s *Sheet) SetRowHeight(row int, height float64) {
	s.RowHeights[row] = height
	if row > s.maxRow {
		s.maxRow = row
	}
}

// MaxRow highest populated row index.
func (s *Sheet) MaxRow() int { return s.maxRow }

// MaxCol highest populated column index.
func (s *Sheet) MaxCol() int { return s.maxCol }
