package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/message"
)

// NotAvailable is shown for derived metrics whose denominator is zero.
const NotAvailable = "N/A"

// FormatNumber renders value with locale thousands separators and the given
// number of decimals. Zero decimals rounds to an integer.
func FormatNumber(value float64, decimals int, locale string) string {
	p := message.NewPrinter(MatchLocale(locale))
	if decimals <= 0 {
		return p.Sprintf("%d", int64(math.Round(value)))
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// FormatCurrency renders a dollar amount with two decimals.
func FormatCurrency(amount float64, locale string) string {
	if amount < 0 {
		return "-$" + FormatNumber(-amount, 2, locale)
	}
	return "$" + FormatNumber(amount, 2, locale)
}

// FormatPercentage renders value with one decimal and a percent sign.
func FormatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

// FormatMetric renders a metric value the way stat cards show it: two
// decimals when the value has a fractional part, an integer otherwise.
func FormatMetric(stat MetricStat, locale string) string {
	return stat.Prefix + FormatNumber(stat.Value, decimalsFor(stat.Value), locale) + stat.Suffix
}

// TruncateText shortens text to maxLength runes, appending an ellipsis.
func TruncateText(text string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:maxLength]), " ") + "..."
}

// plainNumber renders a number the way the CSV exports expect: no grouping
// and no trailing zeros (100, 9845.2).
func plainNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func decimalsFor(value float64) int {
	if value != math.Trunc(value) {
		return 2
	}
	return 0
}
