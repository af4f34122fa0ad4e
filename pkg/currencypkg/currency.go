// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Constants for all supported currencies.
const (
	MXN = "MXN"
	USD = "USD"
	EUR = "EUR"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	MXN,
	USD,
	EUR,
}

// symbols are the es-MX narrow symbols; MXN keeps the bare "$" the exercise shows.
var symbols = map[string]string{
	MXN: "$",
	USD: "US$",
	EUR: "€",
}

var (
	// ErrUnsupportedCurrency indicates a currency code outside SupportedCurrencies.
	ErrUnsupportedCurrency = errors.New("currency is not supported")
	// ErrInvalidLocale indicates a locale that is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
)

// IsSupportedCurrency returns true if the currncy is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}

	return false
}

// digits keeps only the ASCII digits of raw.
func digits(raw string) string {
	var sb strings.Builder

	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			_ = sb.WriteByte(c) // The returned err is always nil.
		}
	}

	return sb.String()
}

// ParseText strips every non-digit character and parses the rest as a base 10 integer.
//
// Amounts are whole units: "$850,000.00" becomes 85000000. Input without digits,
// or whose digits overflow int64, is treated as zero.
func ParseText(raw string) int64 {
	d := digits(raw)
	if d == "" {
		return 0
	}

	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// Formatter renders amounts for a locale and currency.
type Formatter struct {
	printer *message.Printer
	tag     language.Tag
	code    string
	symbol  string
	fracSep string
}

// NewFormatter returns a formatter for the BCP 47 locale and ISO 4217 currency code.
func NewFormatter(locale, code string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	unit, err := currency.ParseISO(code)
	if err != nil || !IsSupportedCurrency(unit.String()) {
		return Formatter{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	p := message.NewPrinter(tag)

	// The printer knows the locale's decimal separator; take it from a sample.
	sample := []rune(p.Sprintf("%.1f", 0.5))
	fracSep := "."
	if len(sample) == 3 {
		fracSep = string(sample[1])
	}

	return Formatter{
		printer: p,
		tag:     tag,
		code:    unit.String(),
		symbol:  symbols[unit.String()],
		fracSep: fracSep,
	}, nil
}

// WithCurrency returns a copy of the formatter using another currency.
func (f Formatter) WithCurrency(code string) (Formatter, error) {
	return NewFormatter(f.tag.String(), code)
}

// Currency returns the ISO code used by the formatter.
func (f Formatter) Currency() string {
	return f.code
}

// Group renders the amount with the locale grouping separators, e.g. 850,000.
func (f Formatter) Group(amount int64) string {
	return f.printer.Sprintf("%d", amount)
}

// Echo reformats raw input text the way an input field shows it while typing.
// Text without digits, or with more digits than an amount can hold, is cleared.
func (f Formatter) Echo(raw string) string {
	d := digits(raw)
	if d == "" {
		return ""
	}

	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return ""
	}

	return f.Group(n)
}

// Money renders the amount as a currency string, e.g. $850,000.00 or -$907,300.00.
func (f Formatter) Money(amount int64) string {
	return f.MoneyDecimal(decimal.NewFromInt(amount))
}

// MoneyDecimal renders d rounded to cents as a currency string.
func (f Formatter) MoneyDecimal(d decimal.Decimal) string {
	d = d.Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s%s%s%s%02d", sign, f.symbol, f.Group(whole.IntPart()), f.fracSep, cents)
}
