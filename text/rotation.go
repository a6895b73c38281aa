package text

import (
	"math"

	"github.com/tsawler/relayout/model"
)

// axisEpsilon absorbs floating noise in direction vectors that are
// meant to be axis-aligned.
const axisEpsilon = 1e-6

// Rotation converts a span's direction vector into a rotation angle in
// degrees, clockwise-positive, normalized to (-180, 180].
//
// The extraction convention is mathematical (counter-clockwise
// positive, right = 0 degrees); the page model convention is clockwise
// positive, so the general case is the negated atan2 angle. The
// axis-aligned cases are explicit branches so that ordinary horizontal
// and vertical text never picks up floating noise from the formula.
// A zero-length vector defaults to horizontal.
func Rotation(dir model.Point) float64 {
	dx, dy := dir.X, dir.Y

	switch {
	case dx == 0 && dy == 0:
		return 0
	case math.Abs(dy) < axisEpsilon && dx > 0:
		return 0
	case math.Abs(dx) < axisEpsilon && dy > 0:
		return 90
	case math.Abs(dx) < axisEpsilon && dy < 0:
		return -90
	}

	angle := -(math.Atan2(dy, dx) * 180 / math.Pi)
	return normalizeAngle(angle)
}

// normalizeAngle maps an angle in degrees into (-180, 180]
func normalizeAngle(a float64) float64 {
	for a <= -180 {
		a += 360
	}
	for a > 180 {
		a -= 360
	}
	return a
}
