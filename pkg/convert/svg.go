package convert

import (
	"math"
	"strconv"
	"strings"
)

// scaleEpsilon is the tolerance below which a scale factor is treated
// as 1.0 and the markup is left untouched.
const scaleEpsilon = 1e-9

// RescaleSVG rewrites the first width and height attribute values of
// the markup, multiplying each by scale. The vector renderer always
// emits markup at scale 1.0, so this is the only place the scale factor
// is applied on the SVG path.
//
// The rewrite is best-effort on purpose: a missing attribute or a value
// that does not parse as a number is left untouched rather than treated
// as an error.
func RescaleSVG(markup string, scale float64) string {
	if math.Abs(scale-1.0) <= scaleEpsilon {
		return markup
	}
	markup = rescaleAttr(markup, `width="`, scale)
	markup = rescaleAttr(markup, `height="`, scale)
	return markup
}

func rescaleAttr(markup, attrPrefix string, scale float64) string {
	pos := strings.Index(markup, attrPrefix)
	if pos < 0 {
		return markup
	}
	start := pos + len(attrPrefix)
	rel := strings.IndexByte(markup[start:], '"')
	if rel < 0 {
		return markup
	}
	end := start + rel

	value, err := strconv.ParseFloat(markup[start:end], 64)
	if err != nil {
		return markup
	}
	scaled := strconv.FormatFloat(value*scale, 'f', 6, 64)
	return markup[:start] + scaled + markup[end:]
}
