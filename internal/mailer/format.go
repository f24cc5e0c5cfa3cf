package mailer

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatUSD renders an amount as en-US dollars rounded to whole units,
// e.g. 262734.2 -> "$262,734". Rounding is for display only.
func FormatUSD(amount float64) string {
	r := math.Round(amount)
	sign := ""
	if r < 0 {
		sign = "-"
		r = -r
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprint(number.Decimal(r, number.MaxFractionDigits(0)))
}

// FormatPercent renders a whole-number percent without trailing zeros.
func FormatPercent(pct float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(number.Decimal(pct, number.MaxFractionDigits(2))) + "%"
}
