// Package numfmt holds lenient numeric helpers: parsing that never fails and
// a fixed-width general number format used to fingerprint numeric arrays.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minWidth is the narrowest width Format produces.
const minWidth = 7

// IsNumber reports whether s parses as a floating point number.
// Surrounding whitespace is ignored.
func IsNumber(s string) bool {
	_, ok := AsFloat(s)
	return ok
}

// AsFloat parses s as a float64. On failure it returns 0 and false.
func AsFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Format renders v right-aligned in a field of length characters (at least 7)
// with as much precision as the width allows. Values whose magnitude fits are
// written in fixed notation, others in exponent notation. Trailing zeros are
// kept, so equal values always produce identical text.
func Format(v float64, length int) string {
	length = max(length, minWidth)

	expon := 0
	if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
		expon = int(math.Log10(math.Abs(v)))
	}

	verb := 'e'
	prec := length - minWidth
	switch {
	case abs(expon) > 99:
		prec--
	case (expon > 0 && expon < prec+4) || (expon <= 0 && -expon < prec-1):
		verb = 'f'
		prec += 4
		if expon > 0 {
			prec -= expon
		}
	}
	prec = max(prec, 0)

	return fmt.Sprintf("%*.*"+string(verb), length, prec, v)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
