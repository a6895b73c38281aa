package opacity

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// Sequence holds one opacity value per fill operation, in document
// order. Index i is the opacity of the i-th fill on the page.
type Sequence []float64

// At returns the opacity for the given fill-operation index, defaulting
// to full opacity when the index is beyond the sequence.
func (s Sequence) At(i int) float64 {
	if i < 0 || i >= len(s) {
		return 1.0
	}
	return s[i]
}

// Resolve scans a page's content-stream tokens and produces the
// opacity sequence for its fill operations.
//
// The scan keeps a single current opacity, initialized to 1.0. A
// resource name token followed by the gs operator overrides it with
// the named resource's alpha (1.0 when the name is unmapped); each
// fill operator appends the current value. Every other token is
// skipped. The scan is single-pass with no backtracking and tolerates
// arbitrary unrecognized operators.
func Resolve(tokens []string, alpha map[string]float64) Sequence {
	seq := make(Sequence, 0)
	current := 1.0

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		// Graphics state change: /Name gs
		if strings.HasPrefix(token, "/") && i+1 < len(tokens) && tokens[i+1] == "gs" {
			name := strings.TrimPrefix(token, "/")
			if a, ok := alpha[name]; ok {
				current = a
			} else {
				current = 1.0
				log.WithField("resource", name).
					Debug("graphics state resource has no alpha mapping, using full opacity")
			}
			i++ // consume the gs operator
			continue
		}

		switch token {
		case "f", "F", "f*":
			seq = append(seq, current)
		}
	}

	return seq
}

// ResolveRaw tokenizes a raw content stream and resolves it. A missing
// or empty stream yields an empty sequence, so every primitive on the
// page defaults to full opacity.
func ResolveRaw(stream string, alpha map[string]float64) Sequence {
	if stream == "" {
		return Sequence{}
	}
	return Resolve(strings.Fields(stream), alpha)
}
