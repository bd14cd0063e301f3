package strfmt

import (
	"math"
	"strconv"
	"strings"
)

const (
	// scientificTrigger is the digit count at which a value with leading fractional
	// zeros switches to scientific notation.
	scientificTrigger = 5

	// maxFractionDigits bounds the digit peeling loop. A float64 fraction never
	// needs more than this many decimal digits to reach zero.
	maxFractionDigits = 1100
)

// fractionTolerance is the square root of the float64 machine epsilon.
var fractionTolerance = math.Sqrt(2.220446049250313e-16)

// dynamicPrecision picks a rendering precision for a float when the specifier
// gives none. ceil > 0 forces scientific notation for values with more than ceil
// integer digits.
type dynamicPrecision struct {
	min  int
	max  int
	ceil int
}

var (
	defaultDynamic = dynamicPrecision{min: 1, max: 16, ceil: 0}
	generalDynamic = dynamicPrecision{min: 0, max: 6, ceil: 6}
)

// format renders abs, which must be finite and non-negative.
func (d dynamicPrecision) format(abs float64) string {
	n, scientific := d.precision(abs)
	if scientific {
		return strconv.FormatFloat(abs, 'e', n, 64)
	}
	return strconv.FormatFloat(abs, 'f', n, 64)
}

func (d dynamicPrecision) precision(abs float64) (n int, scientific bool) {
	intPart := math.Trunc(abs)
	intDigits := 0
	var intText string
	if intPart >= 1 {
		intText = strconv.FormatFloat(intPart, 'f', 0, 64)
		intDigits = len(intText)
	}
	aboveCeil := d.ceil > 0 && intDigits > d.ceil

	if aboveCeil {
		trailing := len(intText) - len(strings.TrimRight(intText, "0"))
		n = intDigits - 1 - trailing
	} else if intDigits < d.max {
		leading := 0
		inLeading := intPart == 0
		f := abs - intPart
		for f > fractionTolerance && 1-f > fractionTolerance && n < maxFractionDigits {
			f *= 10
			digit := math.Trunc(f)
			if inLeading && digit < fractionTolerance {
				leading++
			} else {
				inLeading = false
			}
			f -= digit
			n++
		}
		n = max(n, d.min)

		if n >= scientificTrigger && leading > 0 {
			scientific = true
			n = max(n-(leading+1), 0)
		}
	}

	n = min(n, d.max)
	if aboveCeil {
		scientific = true
		if n == d.max {
			n--
		}
	} else if intDigits+n > d.max {
		if intDigits < n {
			n -= intDigits
		} else {
			n = 0
		}
	}
	return max(n, 0), scientific
}
