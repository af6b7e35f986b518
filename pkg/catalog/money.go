package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rubles = message.NewPrinter(language.Russian)

// FormatMoney renders an amount with Russian digit grouping and the ruble sign.
func FormatMoney(amount int) string {
	return rubles.Sprintf("%d ₽", amount)
}
