// Package format renders raw project values for display: grouped whole
// numbers, currency amounts, periods with a unit and UTC dates.
package format

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Integer returns v rounded to a whole number with en-US thousands
// separators (e.g., "-1,234,568").
func Integer(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drops the sign of -0
	}
	return printer.Sprint(number.Decimal(r, number.MaxFractionDigits(0)))
}

// Currency returns v as a whole currency amount using the narrow symbol of
// code (e.g., "$1,234,568", "€12", "CHF 900"). An empty code formats a plain
// integer and an unknown code is used verbatim in place of a symbol.
func Currency(v float64, code string) string {
	if code == "" {
		return Integer(v)
	}
	sym := Symbol(code)
	if isAlphabetic(sym) {
		sym += " "
	}
	digits := Integer(math.Abs(v))
	if math.Round(v) < 0 {
		return "-" + sym + digits
	}
	return sym + digits
}

// Symbol returns the narrow en-US symbol for an ISO 4217 code, or the code
// itself when it is not recognized.
func Symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if sym := printer.Sprint(currency.NarrowSymbol(unit)); sym != "" {
		return sym
	}
	return unit.String()
}

// Period returns v followed by unit, singularized when v is not above one
// (e.g., "1 day", "0 month", "5 days").
func Period(v float64, unit string) string {
	return Integer(v) + periodSuffix(v, unit)
}

func periodSuffix(v float64, unit string) string {
	if unit == "" {
		return ""
	}
	if v > 1 {
		return " " + unit
	}
	return " " + strings.TrimSuffix(unit, "s")
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
