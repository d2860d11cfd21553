package export

import (
	"ucraft_estimates/internal/usecase/interfaces"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrencySymbol = "₩"

// CurrencyFormatter groups whole amounts with the Korean locale rules
// (1,234,000) and prefixes the configured symbol.
type CurrencyFormatter struct {
	symbol string
	tag    language.Tag
}

var _ interfaces.ICurrencyFormatter = (*CurrencyFormatter)(nil)

func NewCurrencyFormatter(symbol string) *CurrencyFormatter {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &CurrencyFormatter{symbol: symbol, tag: language.Korean}
}

// Format renders amount with the symbol; negatives read -₩1,000.
func (f *CurrencyFormatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.Number(-amount)
	}
	return f.symbol + f.Number(amount)
}

func (f *CurrencyFormatter) Number(amount int64) string {
	return message.NewPrinter(f.tag).Sprintf("%d", amount)
}
