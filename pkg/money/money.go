package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupiahSymbol = "Rp"

// Formatter renders whole-rupiah amounts for display. Amounts are never
// fractional, so no decimal places are printed.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + rupiahSymbol + " " + f.printer.Sprintf("%d", -amount)
	}
	return rupiahSymbol + " " + f.printer.Sprintf("%d", amount)
}
