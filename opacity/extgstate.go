package opacity

import (
	"regexp"
	"strconv"
)

// caPattern matches the constant-alpha entry of an extended graphics
// state object body, e.g. "/ca 0.08" or "/ca .5".
var caPattern = regexp.MustCompile(`/ca\s+([0-9]*\.?[0-9]+)`)

// ParseAlphaMap extracts the fill constant-alpha (/ca) from raw
// extended-graphics-state object bodies, keyed by resource name.
//
// Objects without a /ca entry, or whose value does not parse, are
// treated as "no opacity override" and omitted from the map; Resolve
// then falls back to 1.0 for them. Malformed objects are logged as
// soft warnings, never errors.
func ParseAlphaMap(objects map[string]string) map[string]float64 {
	alpha := make(map[string]float64, len(objects))

	for name, body := range objects {
		m := caPattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			log.WithField("resource", name).
				Warn("unparseable /ca value in graphics state object, using full opacity")
			continue
		}

		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		alpha[name] = v
	}

	return alpha
}
