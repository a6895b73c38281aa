package text

import (
	"strings"

	"github.com/tsawler/relayout/model"
)

// DecodeStyle resolves a span's flags bitmask and font name into
// explicit style booleans. Bold comes from the flag bit OR a
// bold-indicating font name; an explicit signal from either source is
// never downgraded by the other.
func DecodeStyle(span model.TextSpan) model.TextStyle {
	return model.TextStyle{
		Bold:        span.Flags&model.FlagBold != 0 || hasBoldName(span.FontName),
		Italic:      span.Flags&model.FlagItalic != 0,
		Superscript: span.Flags&model.FlagSuperscript != 0,
		Serifed:     span.Flags&model.FlagSerifed != 0,
		Monospaced:  span.Flags&model.FlagMonospaced != 0,
	}
}

// stripSubsetPrefix removes an embedded-subset tag ("ABCDEF+") from a
// font name. Subset tags are six uppercase letters followed by a plus.
func stripSubsetPrefix(name string) string {
	if len(name) < 8 || name[6] != '+' {
		return name
	}
	for i := 0; i < 6; i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			return name
		}
	}
	return name[7:]
}

// hasBoldName reports whether the font name carries a bold marker,
// e.g. "Arial-Bold", "TimesNewRoman,BoldItalic" or "MSGothic-Bold".
func hasBoldName(name string) bool {
	return strings.Contains(strings.ToLower(stripSubsetPrefix(name)), "bold")
}

// fontFamily extracts the family portion of a font name: the subset
// prefix and any style suffix after '-' or ',' are removed, and the
// result is lowercased for comparison.
func fontFamily(name string) string {
	base := stripSubsetPrefix(name)
	if i := strings.IndexAny(base, "-,"); i >= 0 {
		base = base[:i]
	}
	return strings.ToLower(base)
}
