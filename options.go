package relayout

// RowTolerance sets the quantization step for grouping rectangles into
// table rows (default 3.0 units).
func (r *Reconstructor) RowTolerance(v float64) *Reconstructor {
	r.config.Tables.RowTolerance = v
	return r
}

// ColumnTolerance sets the maximum X deviation for two left edges to
// merge into one table column (default 10.0 units).
func (r *Reconstructor) ColumnTolerance(v float64) *Reconstructor {
	r.config.Tables.ColumnTolerance = v
	return r
}

// MinTableSize sets the minimum rows and columns a rectangle group
// needs to become a table candidate (default 2 and 2).
func (r *Reconstructor) MinTableSize(rows, cols int) *Reconstructor {
	r.config.Tables.MinRows = rows
	r.config.Tables.MinCols = cols
	return r
}

// MinCellSize sets the minimum width and height for a rectangle to be
// considered a table cell (default 5.0 by 5.0 units).
func (r *Reconstructor) MinCellSize(w, h float64) *Reconstructor {
	r.config.Tables.MinCellWidth = w
	r.config.Tables.MinCellHeight = h
	return r
}

// RingCenterDistance sets the maximum center distance for two
// near-square shapes to pair into a ring (default 20.0 units).
func (r *Reconstructor) RingCenterDistance(v float64) *Reconstructor {
	r.config.Tables.RingCenterDistance = v
	return r
}

// TextMergeGap sets the maximum gap between adjacent spans for them to
// merge into one text run (default 2.0 units).
func (r *Reconstructor) TextMergeGap(v float64) *Reconstructor {
	r.config.Text.MergeGapTolerance = v
	return r
}

// Workers bounds page-level parallelism (default one worker per CPU
// core).
func (r *Reconstructor) Workers(n int) *Reconstructor {
	r.config.Workers = n
	return r
}
