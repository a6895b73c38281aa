package shapes

import (
	"github.com/tsawler/relayout/model"
)

// Aspect ratio bounds for the classification predicates.
const (
	// OvalAspectMin and OvalAspectMax bound the aspect ratio for a
	// curve path to classify as an oval
	OvalAspectMin = 0.9
	OvalAspectMax = 1.1

	// NearSquareAspectMin and NearSquareAspectMax are the looser
	// bounds used for ring/pair detection
	NearSquareAspectMin = 0.8
	NearSquareAspectMax = 1.2
)

// Decorative bar thresholds. Short wide fills with these proportions
// are page decoration, not table cells.
const (
	barMaxHeight      = 20.0
	barAspectThin     = 6.0
	barAspectVeryWide = 25.0
)

// Classify labels a single primitive with its geometric kind. It is
// purely functional over the primitive: first matching rule wins, and
// anything unrecognized falls back to Polygon with the item count.
func Classify(prim *model.DrawingPrimitive) model.ClassifiedShape {
	shape := model.ClassifiedShape{
		Primitive: prim,
		Sides:     len(prim.Items),
		Opacity:   1.0,
	}

	lines := prim.CountItems(model.ItemLine)
	curves := prim.CountItems(model.ItemCurve)
	rects := prim.CountItems(model.ItemRect)
	total := len(prim.Items)

	switch {
	case total == 1 && lines == 1:
		shape.Kind = model.KindLine
	case total == 1 && rects == 1:
		shape.Kind = model.KindRectangle
	case total == 3 && lines == 3:
		shape.Kind = model.KindTriangle
	case total == 4 && lines == 4:
		shape.Kind = model.KindRectangle
	case curves >= 4 && isOvalAspect(prim.BBox):
		shape.Kind = model.KindOval
	default:
		shape.Kind = model.KindPolygon
	}

	return shape
}

// ClassifyAll classifies a page's primitives in extraction order.
// Malformed primitives (no items, or a bounding box without area) are
// excluded rather than classified.
func ClassifyAll(prims []*model.DrawingPrimitive) []model.ClassifiedShape {
	result := make([]model.ClassifiedShape, 0, len(prims))
	for _, prim := range prims {
		if prim == nil || prim.IsMalformed() {
			continue
		}
		result = append(result, Classify(prim))
	}
	return result
}

func isOvalAspect(b model.BBox) bool {
	aspect := b.AspectRatio()
	return aspect >= OvalAspectMin && aspect <= OvalAspectMax
}

// NearSquare reports whether the bounding box aspect ratio falls in
// the looser [0.8, 1.2] band. Ring detection uses this instead of the
// oval bounds so slightly squashed circles still pair up.
func NearSquare(b model.BBox) bool {
	aspect := b.AspectRatio()
	return aspect >= NearSquareAspectMin && aspect <= NearSquareAspectMax
}

// IsDecorativeBar reports whether a bounding box has the proportions
// of a decorative bar: under 20 units tall with an aspect ratio over
// 6:1, or any height with an aspect ratio over 25:1. Such fills are
// separators and highlights, not table cells.
func IsDecorativeBar(b model.BBox) bool {
	w, h := b.Width, b.Height
	if w <= 0 || h <= 0 {
		return false
	}

	long, short := w, h
	if h > w {
		long, short = h, w
	}
	aspect := long / short

	if h < barMaxHeight && aspect > barAspectThin {
		return true
	}
	return aspect > barAspectVeryWide
}
