package layout

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/relayout/model"
	"github.com/tsawler/relayout/opacity"
	"github.com/tsawler/relayout/shapes"
	"github.com/tsawler/relayout/tables"
	"github.com/tsawler/relayout/text"
)

var log = logrus.StandardLogger()

// PageInput is everything the extraction collaborator provides for one
// page. The engine reads it once and never mutates it.
type PageInput struct {
	Number int // 1-indexed
	Width  float64
	Height float64

	// Primitives are the page's vector drawings in extraction order
	Primitives []*model.DrawingPrimitive

	// Spans are the page's text spans in extraction order
	Spans []model.TextSpan

	// ContentStream is the page's raw content stream, whitespace
	// delimited. Empty when the stream is missing or undecodable.
	ContentStream string

	// GStateAlpha maps graphics-state resource names to their
	// constant-alpha values, parsed from the page's resources
	GStateAlpha map[string]float64
}

// Config aggregates the configuration of every pipeline stage
type Config struct {
	Tables tables.Config
	Text   text.Config

	// Workers bounds page-level parallelism; zero or negative means
	// one worker per CPU core
	Workers int
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Tables:  tables.DefaultConfig(),
		Text:    text.DefaultConfig(),
		Workers: runtime.NumCPU(),
	}
}

// Engine reconstructs page models from extracted inputs
type Engine struct {
	Config Config

	inferencer *tables.Inferencer
	resolver   *text.Resolver
}

// NewEngine creates an engine with the given configuration
func NewEngine(cfg Config) *Engine {
	return &Engine{
		Config:     cfg,
		inferencer: tables.NewInferencer(cfg.Tables),
		resolver:   text.NewResolver(cfg.Text),
	}
}

// AssemblePage runs the full pipeline over one page's inputs. It is a
// pure function of the input and never fails: a page with no
// primitives and no spans yields an empty page model.
func (e *Engine) AssemblePage(input PageInput) *model.PageModel {
	page := &model.PageModel{
		Number: input.Number,
		Width:  input.Width,
		Height: input.Height,
	}

	if len(input.Primitives) == 0 && len(input.Spans) == 0 {
		return page
	}

	classified := shapes.ClassifyAll(input.Primitives)
	seq := opacity.ResolveRaw(input.ContentStream, input.GStateAlpha)
	joinOpacity(classified, seq)

	result := e.inferencer.Infer(classified)
	page.Shapes = result.Standalone
	page.Rings = result.Rings
	page.Tables = result.Tables

	page.TextRuns = e.resolver.Resolve(input.Spans)

	return page
}

// joinOpacity aligns the opacity sequence with the classified shapes
// by fill-operation order: the k-th fill-carrying shape takes the k-th
// sequence entry. Stroke-only shapes consume no entry, and an index
// beyond the sequence defaults to full opacity.
func joinOpacity(classified []model.ClassifiedShape, seq opacity.Sequence) {
	fillIdx := 0
	for i := range classified {
		if !classified[i].Primitive.HasFill() {
			continue
		}
		classified[i].Opacity = seq.At(fillIdx)
		fillIdx++
	}
}

// Reconstruct assembles every page's model on a bounded worker pool
// and returns them in input order. Cancelling the context abandons
// pages that have not started; pages already in flight run to
// completion, and the error reports how many pages were skipped.
func (e *Engine) Reconstruct(ctx context.Context, inputs []PageInput) (*model.Document, error) {
	workers := e.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.WithFields(logrus.Fields{
		"pages":   len(inputs),
		"workers": workers,
	}).Debug("reconstructing document")

	pages := make([]*model.PageModel, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)

	started := 0
	for i := range inputs {
		if ctx.Err() != nil {
			break
		}
		started++
		i := i
		g.Go(func() error {
			pages[i] = e.AssemblePage(inputs[i])
			return nil
		})
	}

	// Workers never fail; Wait only synchronizes the pool
	_ = g.Wait()

	if err := ctx.Err(); err != nil && started < len(inputs) {
		return nil, fmt.Errorf("reconstruction canceled with %d of %d pages unprocessed: %w",
			len(inputs)-started, len(inputs), err)
	}

	return &model.Document{Pages: pages}, nil
}
