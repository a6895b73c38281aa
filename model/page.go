package model

// PageModel is the reconstructed model of a single page: the three
// views consumed by the rendering collaborator. It is assembled once
// by the layout package and read-only afterwards.
type PageModel struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in extraction units
	Height float64

	// Shapes are the standalone classified shapes with resolved
	// opacity, excluding rectangles folded into tables and primitives
	// consumed by ring pairs
	Shapes []ClassifiedShape

	// Rings are composite shapes built from concentric pairs
	Rings []RingShape

	// Tables are the inferred table candidates
	Tables []*TableCandidate

	// TextRuns are the merged, styled text runs
	TextRuns []ResolvedTextRun
}

// IsEmpty reports whether the page model carries no content
func (p *PageModel) IsEmpty() bool {
	return len(p.Shapes) == 0 && len(p.Rings) == 0 &&
		len(p.Tables) == 0 && len(p.TextRuns) == 0
}

// Document is the page-ordered result of reconstructing a whole
// document. It is the single exit point to the renderer.
type Document struct {
	Pages []*PageModel
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *PageModel {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// AllTables returns the table candidates from all pages in page order
func (d *Document) AllTables() []*TableCandidate {
	var tables []*TableCandidate
	for _, page := range d.Pages {
		tables = append(tables, page.Tables...)
	}
	return tables
}
