// Package model defines the data types shared by the layout
// reconstruction pipeline.
//
// The model is split into two layers:
//
//   - The primitive store: [DrawingPrimitive] and [TextSpan], the raw
//     per-page inputs handed over by the extraction collaborator.
//     These are data only, created once per page and immutable
//     afterwards.
//
//   - The reconstructed model: [ClassifiedShape], [TableCandidate],
//     [ResolvedTextRun] and [PageModel], produced by the shapes,
//     tables, text and layout packages.
//
// # Coordinate convention
//
// All coordinates use the extraction convention: origin at the top-left
// of the page, X growing right, Y growing down. [BBox.Top] is therefore
// the smaller Y value and [BBox.Bottom] the larger one.
//
// # Colors
//
// Drawing colors are 0–1 float triples as emitted by the extractor
// ([Color]); text span colors arrive as packed 0xRRGGBB integers and
// are unpacked with [ColorFromPacked].
package model
