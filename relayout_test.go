package relayout

import (
	"context"
	"testing"

	"github.com/tsawler/relayout/layout"
	"github.com/tsawler/relayout/model"
)

func TestFluentOptions(t *testing.T) {
	r := New().
		RowTolerance(5.0).
		ColumnTolerance(15.0).
		MinTableSize(3, 4).
		MinCellSize(2, 2).
		RingCenterDistance(30.0).
		TextMergeGap(1.0).
		Workers(2)

	if r.config.Tables.RowTolerance != 5.0 {
		t.Errorf("Expected row tolerance 5.0, got %f", r.config.Tables.RowTolerance)
	}
	if r.config.Tables.MinRows != 3 || r.config.Tables.MinCols != 4 {
		t.Errorf("Expected 3x4 minimum, got %dx%d", r.config.Tables.MinRows, r.config.Tables.MinCols)
	}
	if r.config.Text.MergeGapTolerance != 1.0 {
		t.Errorf("Expected merge gap 1.0, got %f", r.config.Text.MergeGapTolerance)
	}
	if r.config.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", r.config.Workers)
	}
}

func TestReconstructPageEmpty(t *testing.T) {
	page := New().ReconstructPage(layout.PageInput{Number: 1, Width: 612, Height: 792})

	if !page.IsEmpty() {
		t.Error("Expected empty page model")
	}
	if page.Number != 1 {
		t.Errorf("Expected page number 1, got %d", page.Number)
	}
}

func TestReconstructDocument(t *testing.T) {
	inputs := []layout.PageInput{
		{
			Number: 1,
			Spans: []model.TextSpan{{
				Text:     "Summary",
				FontName: "Helvetica-Bold",
				FontSize: 14,
				Origin:   model.Point{X: 10, Y: 22},
				BBox:     model.NewBBox(10, 10, 60, 14),
				Dir:      model.Point{X: 1, Y: 0},
			}},
		},
		{Number: 2},
	}

	doc := Must(New().Reconstruct(context.Background(), inputs))

	if doc.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
	}
	runs := doc.GetPage(1).TextRuns
	if len(runs) != 1 || !runs[0].Style.Bold {
		t.Errorf("Expected one bold run on page 1, got %+v", runs)
	}
	if !doc.GetPage(2).IsEmpty() {
		t.Error("Expected page 2 empty")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on error")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Must(New().Reconstruct(ctx, []layout.PageInput{{Number: 1}}))
}
