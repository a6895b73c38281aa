package model

// PathItemKind defines the type of a path item inside a drawing primitive
type PathItemKind int

const (
	// ItemLine is a straight segment between two points
	ItemLine PathItemKind = iota
	// ItemCurve is a cubic Bézier curve
	ItemCurve
	// ItemRect is a complete rectangle subpath
	ItemRect
)

func (k PathItemKind) String() string {
	switch k {
	case ItemLine:
		return "Line"
	case ItemCurve:
		return "Curve"
	case ItemRect:
		return "Rect"
	default:
		return "Unknown"
	}
}

// PathItem represents a single item of a drawing primitive's path.
//
// For ItemLine, Points holds start and end. For ItemCurve, Points holds
// start, two control points and end. For ItemRect, Rect holds the
// rectangle and Points is empty.
type PathItem struct {
	Kind   PathItemKind
	Points []Point
	Rect   BBox
}

// LineItem creates a straight segment item
func LineItem(from, to Point) PathItem {
	return PathItem{Kind: ItemLine, Points: []Point{from, to}}
}

// CurveItem creates a cubic Bézier curve item
func CurveItem(from, c1, c2, to Point) PathItem {
	return PathItem{Kind: ItemCurve, Points: []Point{from, c1, c2, to}}
}

// RectItem creates a rectangle item
func RectItem(rect BBox) PathItem {
	return PathItem{Kind: ItemRect, Rect: rect}
}

// FillStyle describes a primitive's fill. Absence of fill is expressed
// by a nil *FillStyle on the primitive, never by sentinel colors.
type FillStyle struct {
	Color Color
	// Opacity as reported by the extractor itself. The content-stream
	// scan in the opacity package may override this per fill operation.
	Opacity float64
}

// StrokeStyle describes a primitive's stroke
type StrokeStyle struct {
	Color Color
	Width float64
}

// DrawingPrimitive is one vector drawing command group as extracted
// from a page. Primitives are owned by the page they were extracted
// from and are immutable after extraction.
type DrawingPrimitive struct {
	Items  []PathItem
	BBox   BBox
	Fill   *FillStyle
	Stroke *StrokeStyle

	// Closed indicates the path was explicitly closed
	Closed bool
	// EvenOdd indicates the even-odd fill rule was in effect
	EvenOdd bool
}

// HasFill reports whether the primitive carries a fill
func (p *DrawingPrimitive) HasFill() bool {
	return p.Fill != nil
}

// HasStroke reports whether the primitive carries a stroke
func (p *DrawingPrimitive) HasStroke() bool {
	return p.Stroke != nil
}

// IsMalformed reports whether the primitive is unusable for
// classification: an empty item list or a bounding box without area.
// Malformed primitives are excluded from the pipeline, never fatal.
func (p *DrawingPrimitive) IsMalformed() bool {
	return len(p.Items) == 0 || !p.BBox.IsValid()
}

// CountItems returns how many items of the given kind the path contains
func (p *DrawingPrimitive) CountItems(kind PathItemKind) int {
	n := 0
	for _, item := range p.Items {
		if item.Kind == kind {
			n++
		}
	}
	return n
}
