package model

// Font flag bits as emitted by the extraction collaborator.
const (
	FlagSuperscript = 1 << 0
	FlagItalic      = 1 << 1
	FlagSerifed     = 1 << 2
	FlagMonospaced  = 1 << 3
	FlagBold        = 1 << 4
)

// TextSpan is one run of uniformly styled text as extracted from a
// page. Spans are immutable; the text package merges them into
// ResolvedTextRuns without mutating them.
type TextSpan struct {
	Text     string
	FontName string
	FontSize float64

	// Flags is the style bitmask (see the Flag* constants)
	Flags int

	// Color packed as 0xRRGGBB
	Color uint32

	Origin Point
	BBox   BBox

	// Dir is the writing direction vector (dx, dy). A zero vector
	// defaults to horizontal text.
	Dir Point
}

// TextStyle holds the booleans decoded from a span's flags and font name
type TextStyle struct {
	Bold        bool
	Italic      bool
	Superscript bool
	Serifed     bool
	Monospaced  bool
}

// ResolvedTextRun is one or more adjacent spans merged under the
// reattachment rule, carrying resolved style and a single rotation
// angle in the target (clockwise-positive) convention.
type ResolvedTextRun struct {
	Text     string
	FontName string
	FontSize float64
	Color    Color
	BBox     BBox

	Style TextStyle

	// Rotation in degrees, clockwise-positive, in (-180, 180]
	Rotation float64

	// SpanCount is the number of source spans merged into this run
	SpanCount int
}
