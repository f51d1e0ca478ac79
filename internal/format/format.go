// Package format renders stored price and date values for display.
// Values are formatted at render time only, never at storage time.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// Price renders a stored price with es-CL thousands grouping
// ("1500000" -> "1.500.000"). Anything that does not parse as a number
// is returned unchanged; Price never fails.
func Price(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return value
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
	}
	return value
}

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Date renders an ISO-8601 timestamp as a short Spanish date, e.g.
// "15 mar 2024". Callers must pass a valid ISO date; anything else
// comes back unchanged.
func Date(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		if t, err = time.Parse("2006-01-02", iso); err != nil {
			return iso
		}
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}
