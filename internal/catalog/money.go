package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Cents converts a major-unit price literal like "4.25" into integer
// cents, rounding half-up. Conversion happens once at ingestion so that
// no floating-point arithmetic ever touches a price afterwards.
func Cents(major string) (int64, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", major, err)
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// MustCents is Cents for static seed data, where a bad literal is a
// programming error and should fail loudly at startup.
func MustCents(major string) int64 {
	cents, err := Cents(major)
	if err != nil {
		panic(err)
	}
	return cents
}

// FormatCents renders integer cents as a display string, e.g. 425 -> "$4.25".
func FormatCents(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}
