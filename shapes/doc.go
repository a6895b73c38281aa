// Package shapes classifies drawing primitives into geometric kinds.
//
// Classification is an ordered, first-match dispatch over a single
// primitive's item count, item types and bounding-box aspect ratio:
//
//  1. One line item → Line
//  2. Three line items → Triangle
//  3. Four line items → Rectangle
//  4. At least four curve items with a near-1 aspect ratio → Oval
//  5. Anything else → Polygon(n), where n is the item count
//
// Classify is total and deterministic: it never fails, and unknown
// shapes always fall back to the Polygon variant. [ClassifyAll]
// additionally excludes malformed primitives (empty item list or
// degenerate bounding box) before classification.
//
// The package also exports the looser [NearSquare] predicate used by
// the tables package for concentric ring detection, and
// [IsDecorativeBar] for filtering thin decorative fills ahead of table
// inference.
package shapes
