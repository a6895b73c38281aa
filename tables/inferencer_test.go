package tables

import (
	"math/rand"
	"testing"

	"github.com/tsawler/relayout/model"
	"github.com/tsawler/relayout/shapes"
)

// makeRect builds a Rectangle-classified shape at the given position
func makeRect(x, y, w, h float64) model.ClassifiedShape {
	bbox := model.NewBBox(x, y, w, h)
	prim := &model.DrawingPrimitive{
		Items: []model.PathItem{
			model.LineItem(model.Point{X: x, Y: y}, model.Point{X: x + w, Y: y}),
			model.LineItem(model.Point{X: x + w, Y: y}, model.Point{X: x + w, Y: y + h}),
			model.LineItem(model.Point{X: x + w, Y: y + h}, model.Point{X: x, Y: y + h}),
			model.LineItem(model.Point{X: x, Y: y + h}, model.Point{X: x, Y: y}),
		},
		BBox: bbox,
		Fill: &model.FillStyle{Color: model.Color{R: 1, G: 1, B: 1}, Opacity: 1},
	}
	return shapes.Classify(prim)
}

// makeGrid builds rows x cols rectangles in a regular grid
func makeGrid(rows, cols int, cellW, cellH float64) []model.ClassifiedShape {
	var result []model.ClassifiedShape
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			result = append(result, makeRect(float64(c)*cellW, float64(r)*cellH, cellW, cellH))
		}
	}
	return result
}

func TestInferRegularGrid(t *testing.T) {
	// 32 rectangles as an 8-row x 4-column grid, no merges
	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(makeGrid(8, 4, 100, 30))

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table candidate, got %d", len(result.Tables))
	}

	table := result.Tables[0]
	if table.RowCount() != 8 {
		t.Errorf("Expected 8 rows, got %d", table.RowCount())
	}
	if table.ColCount() != 4 {
		t.Errorf("Expected 4 columns, got %d", table.ColCount())
	}
	if len(table.Cells) != 32 {
		t.Errorf("Expected 32 cells, got %d", len(table.Cells))
	}
	if spanning := table.SpanningCells(); len(spanning) != 0 {
		t.Errorf("Expected zero spanning cells, got %d", len(spanning))
	}
	if len(result.Standalone) != 0 {
		t.Errorf("Expected no standalone shapes, got %d", len(result.Standalone))
	}
}

func TestInferRowGroupingIdempotentUnderShuffle(t *testing.T) {
	grid := makeGrid(5, 3, 80, 25)

	inf := NewInferencer(DefaultConfig())
	base := inf.Infer(grid)
	if len(base.Tables) != 1 {
		t.Fatal("Expected 1 table candidate")
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]model.ClassifiedShape, len(grid))
		copy(shuffled, grid)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		result := inf.Infer(shuffled)
		if len(result.Tables) != 1 {
			t.Fatalf("Trial %d: expected 1 table, got %d", trial, len(result.Tables))
		}

		table := result.Tables[0]
		if len(table.RowKeys) != len(base.Tables[0].RowKeys) {
			t.Fatalf("Trial %d: row key count changed", trial)
		}
		for i, k := range base.Tables[0].RowKeys {
			if table.RowKeys[i] != k {
				t.Errorf("Trial %d: row key %d: expected %f, got %f", trial, i, k, table.RowKeys[i])
			}
		}
		for i, b := range base.Tables[0].ColBoundaries {
			if table.ColBoundaries[i] != b {
				t.Errorf("Trial %d: column boundary %d: expected %f, got %f", trial, i, b, table.ColBoundaries[i])
			}
		}
	}
}

func TestInferRowSpan(t *testing.T) {
	// Two normal rows plus one cell in column 0 covering both row heights
	cells := []model.ClassifiedShape{
		makeRect(0, 0, 100, 60), // spans rows 0 and 1
		makeRect(100, 0, 100, 30),
		makeRect(100, 30, 100, 30),
		makeRect(200, 0, 100, 30),
		makeRect(200, 30, 100, 30),
	}

	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(cells)

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}

	tall := result.Tables[0].CellAt(0, 0)
	if tall == nil {
		t.Fatal("Expected cell at (0, 0)")
	}
	if tall.RowSpan != 2 {
		t.Errorf("Expected row span 2, got %d", tall.RowSpan)
	}
	if tall.ColSpan != 1 {
		t.Errorf("Expected col span 1, got %d", tall.ColSpan)
	}
}

func TestInferColSpan(t *testing.T) {
	// Header cell across both columns, then a normal 2x2 body
	cells := []model.ClassifiedShape{
		makeRect(0, 0, 200, 30), // spans columns 0 and 1
		makeRect(0, 30, 100, 30),
		makeRect(100, 30, 100, 30),
		makeRect(0, 60, 100, 30),
		makeRect(100, 60, 100, 30),
	}

	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(cells)

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}

	header := result.Tables[0].CellAt(0, 0)
	if header == nil {
		t.Fatal("Expected cell at (0, 0)")
	}
	if header.ColSpan != 2 {
		t.Errorf("Expected col span 2, got %d", header.ColSpan)
	}
	if header.RowSpan != 1 {
		t.Errorf("Expected row span 1, got %d", header.RowSpan)
	}
}

func TestInferBelowMinimumsDemotes(t *testing.T) {
	// A single row of rectangles is not a table
	cells := []model.ClassifiedShape{
		makeRect(0, 0, 100, 30),
		makeRect(100, 0, 100, 30),
		makeRect(200, 0, 100, 30),
	}

	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(cells)

	if len(result.Tables) != 0 {
		t.Errorf("Expected no tables, got %d", len(result.Tables))
	}
	if len(result.Standalone) != 3 {
		t.Errorf("Expected 3 standalone shapes, got %d", len(result.Standalone))
	}
}

func TestInferZeroRectangles(t *testing.T) {
	inf := NewInferencer(DefaultConfig())

	result := inf.Infer(nil)
	if len(result.Tables) != 0 {
		t.Errorf("Expected zero candidates for empty page, got %d", len(result.Tables))
	}

	// Non-rectangle shapes pass through untouched
	line := shapes.Classify(&model.DrawingPrimitive{
		Items: []model.PathItem{model.LineItem(model.Point{}, model.Point{X: 500})},
		BBox:  model.NewBBox(0, 0, 500, 1),
	})
	result = inf.Infer([]model.ClassifiedShape{line})
	if len(result.Tables) != 0 {
		t.Errorf("Expected zero candidates, got %d", len(result.Tables))
	}
	if len(result.Standalone) != 1 {
		t.Errorf("Expected the line to stand alone, got %d shapes", len(result.Standalone))
	}
}

func TestInferFiltersSmallRectangles(t *testing.T) {
	// Border hairlines (width < 5) must not become columns
	cells := makeGrid(2, 2, 100, 30)
	cells = append(cells, makeRect(205, 0, 0.5, 30)) // hairline

	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(cells)

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}
	if result.Tables[0].ColCount() != 2 {
		t.Errorf("Expected hairline to be excluded, got %d columns", result.Tables[0].ColCount())
	}
	if len(result.Standalone) != 1 {
		t.Errorf("Expected hairline as standalone, got %d", len(result.Standalone))
	}
}

func TestInferSplitsDistantGroups(t *testing.T) {
	// Two 2x2 grids separated by more than MaxRowGap become two tables
	top := makeGrid(2, 2, 100, 30)
	var bottom []model.ClassifiedShape
	for _, s := range makeGrid(2, 2, 100, 30) {
		b := s.BBox()
		bottom = append(bottom, makeRect(b.X, b.Y+300, b.Width, b.Height))
	}

	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(append(top, bottom...))

	if len(result.Tables) != 2 {
		t.Fatalf("Expected 2 table candidates, got %d", len(result.Tables))
	}
	for i, table := range result.Tables {
		if table.RowCount() != 2 || table.ColCount() != 2 {
			t.Errorf("Table %d: expected 2x2, got %dx%d", i, table.RowCount(), table.ColCount())
		}
	}
}

func TestInferTieBreakTowardSmallerKey(t *testing.T) {
	inf := NewInferencer(DefaultConfig())

	// With tolerance 3.0, y=4.5 is equidistant from keys 3 and 6 and
	// must land on 3
	if k := inf.rowKey(4.5); k != 3.0 {
		t.Errorf("Expected key 3.0 for y=4.5, got %f", k)
	}
	if k := inf.rowKey(4.6); k != 6.0 {
		t.Errorf("Expected key 6.0 for y=4.6, got %f", k)
	}
	if k := inf.rowKey(4.4); k != 3.0 {
		t.Errorf("Expected key 3.0 for y=4.4, got %f", k)
	}
}

func TestInferCellStyleCarriedOver(t *testing.T) {
	cells := makeGrid(2, 2, 100, 30)
	inf := NewInferencer(DefaultConfig())
	result := inf.Infer(cells)

	if len(result.Tables) != 1 {
		t.Fatal("Expected 1 table")
	}
	cell := result.Tables[0].CellAt(0, 0)
	if cell == nil || cell.Fill == nil {
		t.Fatal("Expected cell with fill")
	}
	if cell.Fill.Color.Hex() != "#FFFFFF" {
		t.Errorf("Expected white fill, got %s", cell.Fill.Color.Hex())
	}
}
