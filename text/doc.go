// Package text resolves extracted text spans into styled, rotated runs.
//
// Spans arrive one per uniformly-styled fragment, in extraction order.
// The [Resolver] performs three jobs:
//
//   - Style decoding: the span's flags bitmask and its font name are
//     combined into explicit booleans (bold, italic, superscript,
//     serifed, monospaced). A bold suffix in the font name and the
//     bold flag bit are OR-combined; neither downgrades the other.
//   - Rotation: the span's direction vector is converted from the
//     counter-clockwise-positive extraction convention into the
//     clockwise-positive convention used by the page model, with the
//     axis-aligned cases handled as explicit branches.
//   - Reattachment: adjacent spans on the same line that share font
//     family and rotation merge into one run. A span that is exactly
//     one bracket character (ASCII or full-width) always attaches to
//     its neighbor even across minor style differences, so a
//     parenthesis never surfaces as a standalone run. Spans that
//     differ in bold or italic state are deliberately kept apart.
//
// Spans with empty trimmed text are dropped before any merge decision.
package text
