// Package price coerces loosely typed prices into decimals and formats them
// for display.
package price

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce turns a JSON-ish value into a decimal. Anything missing or
// non-numeric is zero.
func Coerce(v interface{}) decimal.Decimal {
	switch p := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return p
	case *decimal.Decimal:
		if p == nil {
			return decimal.Zero
		}
		return *p
	case string:
		return Parse(p)
	case json.Number:
		return Parse(p.String())
	case float64:
		return fromFloat(p)
	case float32:
		return fromFloat(float64(p))
	case int:
		return decimal.NewFromInt(int64(p))
	case int32:
		return decimal.NewFromInt(int64(p))
	case int64:
		return decimal.NewFromInt(p)
	case uint:
		return decimal.NewFromUint64(uint64(p))
	case uint64:
		return decimal.NewFromUint64(p)
	case bool:
		if p {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}
	return decimal.Zero
}

// Parse reads a numeric string. Surrounding whitespace is ignored and an empty
// or malformed string is zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Format renders a price as a dollar amount with exactly two decimals.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatAny coerces then formats; it never fails.
func FormatAny(v interface{}) string {
	return Format(Coerce(v))
}

// Sum adds prices exactly.
func Sum(prices ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total
}
