package params

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseFocalPoint converts an "X-Y" percentage pair (as stored by the CMS
// focal point picker, e.g. "30-70") into the 0..1 fractions the CDN uses for
// fp-x and fp-y. Each component is truncated to an integer percent first.
func ParseFocalPoint(raw string) (x, y decimal.Decimal, ok bool) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) < 2 {
		return decimal.Zero, decimal.Zero, false
	}

	px, okX := percent(parts[0])
	py, okY := percent(parts[1])
	if !okX || !okY {
		return decimal.Zero, decimal.Zero, false
	}
	return px.Div(hundred), py.Div(hundred), true
}

func percent(raw string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	return value.Truncate(0), true
}
