package tables

import (
	"github.com/sirupsen/logrus"

	"github.com/tsawler/relayout/model"
	"github.com/tsawler/relayout/shapes"
)

// extractRings finds concentric near-square pairs and folds each into
// a composite ring shape, appending them to the result. It returns the
// shapes not consumed by a pair, in their original order.
//
// Two shapes form a ring pair when both are near-square (ovals or
// otherwise), their centers are within RingCenterDistance, and their
// sizes differ. The larger is the outer shape, the smaller the inner.
// Without this stage a ring graphic reads as two stacked rectangles
// and pollutes table inference.
func (inf *Inferencer) extractRings(classified []model.ClassifiedShape, result *Result) []model.ClassifiedShape {
	consumed := make(map[int]bool)

	for i := 0; i < len(classified); i++ {
		if consumed[i] || !ringEligible(classified[i]) {
			continue
		}

		for j := i + 1; j < len(classified); j++ {
			if consumed[j] || !ringEligible(classified[j]) {
				continue
			}

			ring, ok := inf.tryPair(classified[i], classified[j])
			if !ok {
				continue
			}

			result.Rings = append(result.Rings, ring)
			consumed[i] = true
			consumed[j] = true
			log.WithFields(logrus.Fields{
				"center":    ring.BBox.Center(),
				"thickness": ring.Thickness,
			}).Debug("merged concentric pair into ring shape")
			break
		}
	}

	if len(consumed) == 0 {
		return classified
	}

	remaining := make([]model.ClassifiedShape, 0, len(classified)-len(consumed))
	for i, s := range classified {
		if !consumed[i] {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// ringEligible reports whether a shape can participate in a ring pair:
// an oval, or any shape with a near-square bounding box.
func ringEligible(s model.ClassifiedShape) bool {
	return s.Kind == model.KindOval || shapes.NearSquare(s.BBox())
}

// tryPair attempts to combine two shapes into a ring
func (inf *Inferencer) tryPair(a, b model.ClassifiedShape) (model.RingShape, bool) {
	boxA, boxB := a.BBox(), b.BBox()

	dist := boxA.Center().Distance(boxB.Center())
	if dist > inf.Config.RingCenterDistance {
		return model.RingShape{}, false
	}

	sizeA := maxDim(boxA)
	sizeB := maxDim(boxB)
	if sizeA == sizeB {
		// Same size means overlapping duplicates, not a ring
		return model.RingShape{}, false
	}

	outer, inner := a, b
	if sizeB > sizeA {
		outer, inner = b, a
	}
	outer.Ring = model.RingOuter
	inner.Ring = model.RingInner

	ring := model.RingShape{
		BBox:  outer.BBox(),
		Outer: outer,
		Inner: inner,
	}

	// The band color comes from the inner stroke when present, the
	// way ring graphics are usually drawn (outer fill, inner stroke
	// punching the hole); otherwise fall back to the outer fill.
	switch {
	case inner.Primitive.HasStroke() && inner.Primitive.Stroke.Width > 0:
		ring.Color = inner.Primitive.Stroke.Color
		ring.Thickness = inner.Primitive.Stroke.Width
	case outer.Primitive.HasFill():
		ring.Color = outer.Primitive.Fill.Color
		ring.Thickness = (maxDim(outer.BBox()) - maxDim(inner.BBox())) / 2
	case outer.Primitive.HasStroke():
		ring.Color = outer.Primitive.Stroke.Color
		ring.Thickness = outer.Primitive.Stroke.Width
	default:
		ring.Thickness = (maxDim(outer.BBox()) - maxDim(inner.BBox())) / 2
	}

	return ring, true
}

func maxDim(b model.BBox) float64 {
	if b.Width > b.Height {
		return b.Width
	}
	return b.Height
}
