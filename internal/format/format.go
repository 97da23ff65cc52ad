// Package format implements the display formatting for the renderer:
// currency amounts, dates and HTML escaping for user-entered text.
package format

import (
	"strings"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with US-English grouping.
var printer = message.NewPrinter(language.AmericanEnglish)

// symbol is the narrow currency symbol, "$" for USD.
var symbol = printer.Sprint(currency.NarrowSymbol(currency.USD))

// Currency formats an amount as a US-dollar value with two decimals and
// thousands separators, e.g. "$1,234.50". Negative amounts carry a
// leading minus sign.
func Currency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	value, _ := amount.Round(2).Float64()
	return sign + symbol + printer.Sprintf("%.2f", value)
}

// Date renders a calendar date in short human-readable form,
// e.g. "Jan 10, 2025". The output never depends on the local timezone.
func Date(d types.Date) string {
	return d.Time().Format("Jan 2, 2006")
}

// htmlEscaper maps the five characters that allow markup injection to
// their entity equivalents.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes user-entered text for a rendering surface.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
