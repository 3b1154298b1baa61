// Package money renders amounts in the dashboard's currency notation.
package money

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Symbol prefixes every rendered amount (Zambian kwacha).
const Symbol = "K"

// Format renders d as K45,000 or K832.50. Whole amounts drop the fraction.
func Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + Symbol + grouped(d)
}

// Compact renders large amounts the way the summary cards do: K2.4M, K186K.
func Compact(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case d.GreaterThanOrEqual(million):
		return sign + Symbol + trimZeros(d.Div(million).StringFixed(1)) + "M"
	case d.GreaterThanOrEqual(decimal.NewFromInt(100_000)):
		return sign + Symbol + d.Div(thousand).Round(0).String() + "K"
	}
	return sign + Symbol + grouped(d)
}

// Number renders a plain quantity with thousands separators.
func Number(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + grouped(d.Neg())
	}
	return grouped(d)
}

// Percent renders d with one decimal place, e.g. 4.1%.
func Percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// Rate renders an interest rate as given, e.g. 12.5%.
func Rate(d decimal.Decimal) string {
	return d.String() + "%"
}

func grouped(d decimal.Decimal) string {
	whole := d.Truncate(0)
	out := humanize.Comma(whole.IntPart())
	frac := d.Sub(whole)
	if frac.IsZero() {
		return out
	}
	fixed := frac.StringFixed(2)
	if strings.HasPrefix(fixed, "1") {
		// rounding carried into the whole part
		return humanize.Comma(whole.IntPart()+1) + ".00"
	}
	return out + strings.TrimPrefix(fixed, "0")
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
