package model

import "fmt"

// ShapeKind is the geometric classification of a drawing primitive
type ShapeKind int

const (
	KindLine ShapeKind = iota
	KindRectangle
	KindTriangle
	KindOval
	KindPolygon
)

func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	case KindOval:
		return "Oval"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// RingRole marks a shape's role inside a concentric ring pair
type RingRole int

const (
	// RingNone means the shape is not part of a ring pair
	RingNone RingRole = iota
	// RingOuter is the larger shape of a concentric pair
	RingOuter
	// RingInner is the smaller shape of a concentric pair
	RingInner
)

// ClassifiedShape is a drawing primitive tagged with its geometric
// kind. Classification is many-to-one: it never merges primitives.
type ClassifiedShape struct {
	Primitive *DrawingPrimitive
	Kind      ShapeKind

	// Sides is the item count, meaningful for KindPolygon
	Sides int

	// Opacity resolved from the content-stream scan, 1.0 when no
	// graphics-state override applies
	Opacity float64

	// Ring is set by the table inferencer when the shape belongs to a
	// concentric pair
	Ring RingRole
}

// BBox returns the primitive's bounding box
func (s ClassifiedShape) BBox() BBox {
	return s.Primitive.BBox
}

// Label returns a short description of the shape, e.g. "Polygon(6)"
func (s ClassifiedShape) Label() string {
	if s.Kind == KindPolygon {
		return fmt.Sprintf("Polygon(%d)", s.Sides)
	}
	return s.Kind.String()
}

// RingShape is a composite shape built from a concentric pair: the
// outer shape's extent rendered as an oval whose stroke is the ring
// band. This keeps ring graphics from being misread as stacked
// rectangles or table cells.
type RingShape struct {
	BBox BBox

	// Color of the ring band
	Color Color
	// Thickness of the ring band
	Thickness float64

	// The shapes the ring was built from
	Outer ClassifiedShape
	Inner ClassifiedShape
}
