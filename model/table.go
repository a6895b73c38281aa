package model

import "sort"

// Cell represents one table cell inferred from a rectangle primitive
type Cell struct {
	BBox BBox

	// Row and Col are 0-indexed positions in the candidate's grid
	Row int
	Col int

	// RowSpan and ColSpan are derived from bbox overlap across
	// adjacent row/column keys, never asserted by the extractor
	RowSpan int
	ColSpan int

	// Fill is nil for cells whose source rectangle had no fill
	Fill   *FillStyle
	Border *StrokeStyle
}

// TableCandidate is a set of cells organized by tolerance-quantized
// row keys and deduplicated column boundaries.
type TableCandidate struct {
	Cells []Cell

	// RowKeys are the quantized top-Y keys, ascending (top to bottom)
	RowKeys []float64

	// ColBoundaries are the deduplicated left-X column boundaries, ascending
	ColBoundaries []float64

	BBox BBox
}

// RowCount returns the number of rows in the candidate
func (t *TableCandidate) RowCount() int {
	return len(t.RowKeys)
}

// ColCount returns the number of columns in the candidate
func (t *TableCandidate) ColCount() int {
	return len(t.ColBoundaries)
}

// CellAt returns the cell anchored at the given row and column, or nil
func (t *TableCandidate) CellAt(row, col int) *Cell {
	for i := range t.Cells {
		if t.Cells[i].Row == row && t.Cells[i].Col == col {
			return &t.Cells[i]
		}
	}
	return nil
}

// SpanningCells returns the cells that span more than one row or column
func (t *TableCandidate) SpanningCells() []Cell {
	var spanning []Cell
	for _, c := range t.Cells {
		if c.RowSpan > 1 || c.ColSpan > 1 {
			spanning = append(spanning, c)
		}
	}
	return spanning
}

// SortCells orders cells by row, then column. The inferencer calls
// this before emitting a candidate so page models are reproducible.
func (t *TableCandidate) SortCells() {
	sort.SliceStable(t.Cells, func(i, j int) bool {
		if t.Cells[i].Row != t.Cells[j].Row {
			return t.Cells[i].Row < t.Cells[j].Row
		}
		return t.Cells[i].Col < t.Cells[j].Col
	})
}
