// Package currency renders store amounts: thousands separated, no decimals, symbol suffix.
package currency

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/leekchan/accounting"
)

type formatter struct {
	ac *accounting.Accounting
}

// NewFormatter builds the formatter from the currency section of the config
func NewFormatter(cfg *config.Config) service.MoneyFormatter {
	return New(cfg.Currency.Symbol, cfg.Currency.Thousand)
}

// New returns a formatter rendering "1,234 <symbol>"
func New(symbol, thousand string) service.MoneyFormatter {
	return &formatter{
		ac: &accounting.Accounting{
			Symbol:    symbol,
			Precision: 0,
			Thousand:  thousand,
			Decimal:   ".",
			Format:    "%v %s",
		},
	}
}

// Format renders amount with the configured separator and symbol
func (f *formatter) Format(amount int64) string {
	return f.ac.FormatMoneyInt(int(amount))
}
