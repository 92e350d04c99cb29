package money

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds to two decimals. The pricing engine keeps full float
// precision; rounding happens only here, at presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatEUR renders an amount the French way: "1 234,56 €".
func FormatEUR(v float64) string {
	s := fmt.Sprintf("%.2f", Round2(v))
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + parts[1] + " €"
	if neg {
		out = "-" + out
	}
	return out
}
