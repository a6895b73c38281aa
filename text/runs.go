package text

import (
	"math"
	"strings"

	"golang.org/x/text/width"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/relayout/model"
)

var log = logrus.StandardLogger()

// Config holds resolver configuration
type Config struct {
	// MergeGapTolerance is the maximum gap, along the reading
	// direction, between two spans for them to merge into one run
	MergeGapTolerance float64

	// LineTolerance is the maximum origin deviation, across the
	// reading direction, for two spans to count as the same line
	LineTolerance float64
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		MergeGapTolerance: 2.0,
		LineTolerance:     3.0,
	}
}

// Resolver merges text spans into resolved runs
type Resolver struct {
	Config Config
}

// NewResolver creates a resolver with the given configuration
func NewResolver(cfg Config) *Resolver {
	return &Resolver{Config: cfg}
}

// spanInfo carries one span together with its decoded attributes
type spanInfo struct {
	span     model.TextSpan
	style    model.TextStyle
	rotation float64
	family   string
	bracket  bool
}

// Resolve consumes a page's spans in extraction order and produces its
// resolved runs. Spans with empty trimmed text are dropped before any
// merge decision; an empty input yields nil.
func (r *Resolver) Resolve(spans []model.TextSpan) []model.ResolvedTextRun {
	infos := make([]spanInfo, 0, len(spans))
	for _, s := range spans {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		infos = append(infos, spanInfo{
			span:     s,
			style:    DecodeStyle(s),
			rotation: Rotation(s.Dir),
			family:   fontFamily(s.FontName),
			bracket:  isLoneBracket(trimmed),
		})
	}
	if dropped := len(spans) - len(infos); dropped > 0 {
		log.WithField("count", dropped).Debug("dropped empty text spans")
	}
	if len(infos) == 0 {
		return nil
	}

	var runs []model.ResolvedTextRun
	builder := newBuilder(infos[0])
	for _, info := range infos[1:] {
		if r.canAttach(builder, info) {
			builder.add(info)
			continue
		}
		runs = append(runs, builder.finish())
		builder = newBuilder(info)
	}
	return append(runs, builder.finish())
}

// bracketChars are the characters a lone span may consist of to be
// reattached to its neighbor regardless of style differences.
const bracketChars = "()[]{}<>"

// isLoneBracket reports whether trimmed text is exactly one bracket
// character. Full-width forms fold to their ASCII counterparts first.
func isLoneBracket(trimmed string) bool {
	runes := []rune(width.Fold.String(trimmed))
	return len(runes) == 1 && strings.ContainsRune(bracketChars, runes[0])
}

// canAttach decides whether the next span extends the current run.
// Rotation and line placement must always match; font family and
// bold/italic state must match too, unless either side is a lone
// bracket, which attaches across minor style differences so it never
// surfaces standalone.
func (r *Resolver) canAttach(b *runBuilder, next spanInfo) bool {
	last := b.last()
	if next.rotation != last.rotation {
		return false
	}
	if !r.sameLine(last, next) {
		return false
	}
	if readingGap(last.rotation, last.span.BBox, next.span.BBox) > r.Config.MergeGapTolerance {
		return false
	}
	if last.bracket || next.bracket {
		return true
	}

	anchor := b.anchor()
	if next.family != anchor.family {
		return false
	}
	return next.style.Bold == anchor.style.Bold && next.style.Italic == anchor.style.Italic
}

// sameLine compares the span origins across the reading direction
func (r *Resolver) sameLine(a, b spanInfo) bool {
	if a.rotation == 90 || a.rotation == -90 {
		return math.Abs(a.span.Origin.X-b.span.Origin.X) <= r.Config.LineTolerance
	}
	return math.Abs(a.span.Origin.Y-b.span.Origin.Y) <= r.Config.LineTolerance
}

// readingGap measures the gap between two boxes along the reading
// direction for the given rotation. Overlapping boxes yield a negative
// gap, which always merges.
func readingGap(rotation float64, prev, next model.BBox) float64 {
	switch rotation {
	case 90:
		return next.Top() - prev.Bottom()
	case -90:
		return prev.Top() - next.Bottom()
	case 180:
		return prev.Left() - next.Right()
	default:
		return next.Left() - prev.Right()
	}
}

// runBuilder accumulates spans into one run
type runBuilder struct {
	parts []spanInfo
	bbox  model.BBox
	text  strings.Builder
}

func newBuilder(first spanInfo) *runBuilder {
	b := &runBuilder{bbox: first.span.BBox}
	b.parts = append(b.parts, first)
	b.text.WriteString(first.span.Text)
	return b
}

func (b *runBuilder) last() spanInfo {
	return b.parts[len(b.parts)-1]
}

// anchor is the first non-bracket part; it supplies the run's font,
// style and color so an attached bracket never defines them. A run of
// only brackets anchors on its first part.
func (b *runBuilder) anchor() spanInfo {
	for _, p := range b.parts {
		if !p.bracket {
			return p
		}
	}
	return b.parts[0]
}

func (b *runBuilder) add(info spanInfo) {
	b.parts = append(b.parts, info)
	b.bbox = b.bbox.Union(info.span.BBox)
	b.text.WriteString(info.span.Text)
}

func (b *runBuilder) finish() model.ResolvedTextRun {
	anchor := b.anchor()
	return model.ResolvedTextRun{
		Text:      b.text.String(),
		FontName:  stripSubsetPrefix(anchor.span.FontName),
		FontSize:  anchor.span.FontSize,
		Color:     model.ColorFromPacked(anchor.span.Color),
		BBox:      b.bbox,
		Style:     anchor.style,
		Rotation:  anchor.rotation,
		SpanCount: len(b.parts),
	}
}
