package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Params is a single render call's attribute bag keyed by attribute name.
type Params map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Keys returns the parameter names in ascending order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String returns the formatted value stored under key.
func (p Params) String(key string) (string, bool) {
	value, ok := p[key]
	if !ok || value == nil {
		return "", false
	}
	return Format(value), true
}

// Strings flattens the bag into formatted string values.
func (p Params) Strings() map[string]string {
	out := make(map[string]string, len(p))
	for key, value := range p {
		if value == nil {
			continue
		}
		out[key] = Format(value)
	}
	return out
}

// Merge layers overrides on top of base without mutating either input. Later
// overrides win.
func Merge(base Params, overrides ...Params) Params {
	out := base.Clone()
	for _, layer := range overrides {
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

// Format renders a parameter value in the form used on the wire. Floats are
// printed through decimal so 0.3 stays 0.3 and 80.0 becomes 80.
func Format(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case decimal.Decimal:
		return value.String()
	case *decimal.Decimal:
		if value == nil {
			return ""
		}
		return value.String()
	case int:
		return strconv.Itoa(value)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", value)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)
	case float32:
		return decimal.NewFromFloat32(value).String()
	case float64:
		return decimal.NewFromFloat(value).String()
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// Number returns the numeric view of v. Strings are parsed leniently after
// trimming whitespace; anything else non-numeric reports false.
func Number(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return value, true
	case int:
		return decimal.NewFromInt(int64(value)), true
	case int32:
		return decimal.NewFromInt32(value), true
	case int64:
		return decimal.NewFromInt(value), true
	case float32:
		return decimal.NewFromFloat32(value), true
	case float64:
		return decimal.NewFromFloat(value), true
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		d, err := decimal.NewFromString(strings.TrimSpace(Format(value)))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
}

// ParsePairs turns "key=value" arguments into a bag. Only the first '=' splits
// the pair so values may contain further '=' characters.
func ParsePairs(pairs []string) (Params, error) {
	out := make(Params, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("params: expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
