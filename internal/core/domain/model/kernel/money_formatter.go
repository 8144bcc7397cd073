package kernel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyFormatter turns an amount and a currency code into display text.
type MoneyFormatter interface {
	Format(amount decimal.Decimal, currency string) string
}

// PtBRFormatter follows the Brazilian locale: symbol, a non-breaking space,
// "." between thousands and "," before the two fraction digits.
type PtBRFormatter struct{}

var ptBRSymbols = map[string]string{
	"BRL": "R$",
	"USD": "US$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "JP¥",
}

func (PtBRFormatter) Format(amount decimal.Decimal, currency string) string {
	symbol, ok := ptBRSymbols[currency]
	if !ok {
		symbol = currency
	}

	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, fraction, _ := strings.Cut(fixed, ".")

	return sign + symbol + "\u00a0" + groupThousands(whole, '.') + "," + fraction
}

func groupThousands(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
