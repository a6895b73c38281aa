// Package opacity resolves per-fill opacity from a page's content
// stream.
//
// PDF content streams set constant alpha through named extended
// graphics state resources: a "/GS1 gs" pair switches to the state
// named GS1, whose /ca entry (if any) applies to every subsequent fill
// until the next override. [Resolve] performs a single left-to-right
// scan over the token sequence, carrying one scalar opacity value and
// appending it to the output once per fill operator, so the result
// aligns 1:1 with the page's fill operations in document order.
//
// The scan is deliberately flat: save/restore (q/Q) nesting is not
// modeled, and opacity changes are treated as sequential overrides.
// Documents relying on nested transparency groups would need a
// stack-based state machine instead.
//
// Failure is never fatal here. Unrecognized operators are skipped,
// unmapped or unparseable graphics-state resources default to full
// opacity (logged as a warning), and a missing content stream yields
// an empty sequence, after which every primitive defaults to 1.0.
package opacity
