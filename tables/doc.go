// Package tables infers table structure from rectangle-classified
// drawing primitives.
//
// # Algorithm
//
// The [Inferencer] works in ordered stages:
//
//  1. Ring extraction - concentric near-square pairs are folded into
//     composite ring shapes so circular graphics are not misread as
//     stacked cells.
//  2. Filtering - rectangles below the minimum cell size and
//     decorative bars are demoted to standalone shapes.
//  3. Row grouping - each rectangle's top-Y is quantized to the
//     nearest multiple of the row tolerance; rectangles sharing a
//     quantized key form a row. Ties at the tolerance boundary go to
//     the smaller key.
//  4. Splitting - runs of row keys separated by more than the maximum
//     row gap become separate table candidates.
//  5. Column discovery - left-X coordinates are collected across the
//     candidate's rows, sorted, and merged within the column
//     tolerance into unique boundaries.
//  6. Cell assignment and span detection - each rectangle is anchored
//     at its (row, column) and its row/column spans are derived from
//     bounding-box overlap across adjacent keys. Spans are always
//     derived, never asserted.
//  7. Gating - a candidate below the minimum rows or columns is
//     demoted: its rectangles return to the standalone shape list.
//
// A page with zero rectangles yields zero candidates; nothing in this
// package returns an error.
//
// # Configuration
//
// All tolerances are empirically chosen and scale-sensitive, so they
// are exposed on [Config] rather than hard-coded:
//
//	cfg := tables.DefaultConfig()
//	cfg.RowTolerance = 5.0
//	inf := tables.NewInferencer(cfg)
//	result := inf.Infer(shapes)
package tables
