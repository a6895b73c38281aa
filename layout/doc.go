// Package layout assembles page models from extracted page inputs.
//
// The [Engine] is the seam between the extraction collaborator and the
// rendering collaborator. Per page it runs the full pipeline:
//
//  1. Shape classification over the page's drawing primitives.
//  2. Opacity resolution over the page's content-stream tokens, joined
//     to the classified shapes by fill-operation order.
//  3. Table inference and ring extraction over the classified shapes.
//  4. Text span resolution into styled, rotated runs.
//
// No new inference happens at this level; the engine only wires the
// component outputs into one [model.PageModel] per page.
//
// Documents are processed page-parallel on a bounded worker pool. Page
// inputs are owned exclusively by their page's pipeline run, so no
// locking is needed. Cancelling the context abandons pages that have
// not started; in-flight pages always run to completion so the engine
// never emits a partially-assembled model.
package layout
