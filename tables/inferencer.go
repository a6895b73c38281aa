package tables

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/relayout/model"
	"github.com/tsawler/relayout/shapes"
)

var log = logrus.StandardLogger()

// Config holds inferencer configuration
type Config struct {
	// RowTolerance is the quantization step for grouping rectangles
	// into rows by their top-Y coordinate (in page units)
	RowTolerance float64

	// ColumnTolerance is the maximum X deviation for two left edges
	// to merge into one column boundary
	ColumnTolerance float64

	// MinRows and MinCols gate table candidates; anything smaller is
	// demoted to standalone shapes
	MinRows int
	MinCols int

	// MinCellWidth and MinCellHeight exclude hairlines and border
	// strokes from cell candidacy
	MinCellWidth  float64
	MinCellHeight float64

	// RingCenterDistance is the maximum center distance for two
	// near-square shapes to count as a concentric pair
	RingCenterDistance float64

	// MaxRowGap is the largest gap between adjacent row keys before
	// the rows are split into separate table candidates
	MaxRowGap float64
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		RowTolerance:       3.0,
		ColumnTolerance:    10.0,
		MinRows:            2,
		MinCols:            2,
		MinCellWidth:       5.0,
		MinCellHeight:      5.0,
		RingCenterDistance: 20.0,
		MaxRowGap:          50.0,
	}
}

// Inferencer produces table candidates from classified shapes
type Inferencer struct {
	Config Config
}

// NewInferencer creates an inferencer with the given configuration
func NewInferencer(cfg Config) *Inferencer {
	return &Inferencer{Config: cfg}
}

// Result holds the outcome of table inference for one page. Shapes
// consumed by tables or ring pairs do not appear in Standalone.
type Result struct {
	Tables     []*model.TableCandidate
	Rings      []model.RingShape
	Standalone []model.ClassifiedShape
}

// Infer consumes a page's classified shapes and produces its table
// candidates, composite rings, and remaining standalone shapes. It
// never fails: a page with no rectangles yields zero candidates.
func (inf *Inferencer) Infer(classified []model.ClassifiedShape) Result {
	var result Result

	remaining := inf.extractRings(classified, &result)

	// Partition rectangles eligible for table inference from
	// everything else
	var candidates []model.ClassifiedShape
	for _, s := range remaining {
		if inf.isCellCandidate(s) {
			candidates = append(candidates, s)
		} else {
			result.Standalone = append(result.Standalone, s)
		}
	}

	if len(candidates) == 0 {
		return result
	}

	// Group into clusters of nearby rows, each a potential table
	for _, cluster := range inf.clusterByRowGap(candidates) {
		table, ok := inf.buildCandidate(cluster)
		if !ok {
			// Too small to be a table; the rectangles stand alone
			log.WithField("rects", len(cluster)).
				Debug("rectangle group below table minimums, demoting to standalone shapes")
			result.Standalone = append(result.Standalone, cluster...)
			continue
		}
		result.Tables = append(result.Tables, table)
	}

	return result
}

// isCellCandidate reports whether a shape can participate in table
// inference: a rectangle of at least the minimum cell size that does
// not look like a decorative bar.
func (inf *Inferencer) isCellCandidate(s model.ClassifiedShape) bool {
	if s.Kind != model.KindRectangle {
		return false
	}
	b := s.BBox()
	if b.Width < inf.Config.MinCellWidth || b.Height < inf.Config.MinCellHeight {
		return false
	}
	return !shapes.IsDecorativeBar(b)
}

// rowKey quantizes a top-Y coordinate to the nearest multiple of the
// row tolerance. A coordinate exactly between two keys goes to the
// smaller one.
func (inf *Inferencer) rowKey(y float64) float64 {
	tol := inf.Config.RowTolerance
	if tol <= 0 {
		return y
	}
	return math.Ceil(y/tol-0.5) * tol
}

// clusterByRowGap groups cell candidates into clusters whose adjacent
// row keys are within MaxRowGap of each other. Each cluster is a
// potential table; vertically distant groups become separate
// candidates.
func (inf *Inferencer) clusterByRowGap(cands []model.ClassifiedShape) [][]model.ClassifiedShape {
	byKey := make(map[float64][]model.ClassifiedShape)
	for _, s := range cands {
		k := inf.rowKey(s.BBox().Top())
		byKey[k] = append(byKey[k], s)
	}

	keys := make([]float64, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var clusters [][]model.ClassifiedShape
	var current []model.ClassifiedShape

	for i, k := range keys {
		if i > 0 && k-keys[i-1] > inf.Config.MaxRowGap {
			clusters = append(clusters, current)
			current = nil
		}
		current = append(current, byKey[k]...)
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}

	return clusters
}

// buildCandidate builds a table candidate from one cluster of
// rectangles. Returns false when the cluster does not meet the
// minimum rows/columns.
func (inf *Inferencer) buildCandidate(cluster []model.ClassifiedShape) (*model.TableCandidate, bool) {
	cfg := inf.Config

	// Row keys, ascending (top to bottom)
	byKey := make(map[float64][]model.ClassifiedShape)
	for _, s := range cluster {
		k := inf.rowKey(s.BBox().Top())
		byKey[k] = append(byKey[k], s)
	}
	rowKeys := make([]float64, 0, len(byKey))
	for k := range byKey {
		rowKeys = append(rowKeys, k)
	}
	sort.Float64s(rowKeys)

	// Column boundaries: unique left-X positions across all rows,
	// merged within the column tolerance (first position wins)
	xs := make([]float64, 0, len(cluster))
	for _, s := range cluster {
		xs = append(xs, s.BBox().Left())
	}
	sort.Float64s(xs)

	var bounds []float64
	for _, x := range xs {
		if len(bounds) == 0 || x-bounds[len(bounds)-1] >= cfg.ColumnTolerance {
			bounds = append(bounds, x)
		}
	}

	if len(rowKeys) < cfg.MinRows || len(bounds) < cfg.MinCols {
		return nil, false
	}

	table := &model.TableCandidate{
		RowKeys:       rowKeys,
		ColBoundaries: bounds,
	}

	for rowIdx, key := range rowKeys {
		rects := byKey[key]
		sort.SliceStable(rects, func(i, j int) bool {
			return rects[i].BBox().Left() < rects[j].BBox().Left()
		})

		for _, s := range rects {
			b := s.BBox()

			colIdx := nearestBoundary(bounds, b.Left(), cfg.ColumnTolerance)
			if colIdx < 0 {
				log.WithField("x", b.Left()).
					Debug("cell does not match any column boundary, skipping")
				continue
			}

			cell := model.Cell{
				BBox:    b,
				Row:     rowIdx,
				Col:     colIdx,
				RowSpan: inf.rowSpan(b, rowKeys, rowIdx),
				ColSpan: colSpan(bounds, colIdx, b, cfg.ColumnTolerance),
				Fill:    s.Primitive.Fill,
				Border:  s.Primitive.Stroke,
			}
			table.Cells = append(table.Cells, cell)

			if table.BBox.IsValid() {
				table.BBox = table.BBox.Union(b)
			} else {
				table.BBox = b
			}
		}
	}

	if len(table.Cells) == 0 {
		return nil, false
	}

	table.SortCells()
	return table, true
}

// nearestBoundary returns the index of the boundary closest to x
// within the tolerance, or -1. Ties go to the earlier boundary.
func nearestBoundary(bounds []float64, x, tol float64) int {
	best := -1
	bestDist := tol
	for i, b := range bounds {
		d := math.Abs(x - b)
		if d < bestDist || (d == bestDist && best == -1) {
			best = i
			bestDist = d
		}
	}
	return best
}

// rowSpan counts how many row keys the rectangle overlaps: the
// rectangle spans a later row when its bottom edge exceeds that row's
// key by more than the tolerance.
func (inf *Inferencer) rowSpan(b model.BBox, rowKeys []float64, rowIdx int) int {
	span := 1
	for i := rowIdx + 1; i < len(rowKeys); i++ {
		if b.Bottom() > rowKeys[i]+inf.Config.RowTolerance {
			span++
		} else {
			break
		}
	}
	return span
}

// colSpan counts how many column boundaries fall strictly within the
// rectangle's horizontal extent, starting at its own boundary.
func colSpan(bounds []float64, colIdx int, b model.BBox, tol float64) int {
	span := 1
	for i := colIdx + 1; i < len(bounds); i++ {
		if bounds[i] < b.Right()-tol/2 {
			span++
		} else {
			break
		}
	}
	return span
}
