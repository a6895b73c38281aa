// Package relayout provides a fluent API for reconstructing page
// layout models from extracted PDF page content.
//
// Basic usage:
//
//	doc, err := relayout.New().Reconstruct(ctx, inputs)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, err := relayout.New().
//	    RowTolerance(5.0).
//	    Workers(4).
//	    Reconstruct(ctx, inputs)
//
// For advanced use cases, the lower-level layout package is also
// available.
package relayout

import (
	"context"

	"github.com/tsawler/relayout/layout"
	"github.com/tsawler/relayout/model"
)

// Reconstructor is the fluent entry point. Configure it with the
// option methods, then call Reconstruct or ReconstructPage. A zero
// Reconstructor is not usable; always start from New.
type Reconstructor struct {
	config layout.Config
}

// New returns a Reconstructor with the default configuration
func New() *Reconstructor {
	return &Reconstructor{config: layout.DefaultConfig()}
}

// Reconstruct assembles a page model for every input, page-parallel,
// and returns them in input order.
func (r *Reconstructor) Reconstruct(ctx context.Context, inputs []layout.PageInput) (*model.Document, error) {
	return layout.NewEngine(r.config).Reconstruct(ctx, inputs)
}

// ReconstructPage assembles a single page's model. It never fails: a
// page with no content yields an empty model.
func (r *Reconstructor) ReconstructPage(input layout.PageInput) *model.PageModel {
	return layout.NewEngine(r.config).AssemblePage(input)
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := relayout.Must(relayout.New().Reconstruct(ctx, inputs))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
