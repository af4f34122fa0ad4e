package currencypkg

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/ledger-quiz/pkg/randompkg"
)

func TestParseText(t *testing.T) {
	testCases := []struct {
		raw  string
		want int64
	}{
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: "1,250", want: 1250},
		{raw: "850000", want: 850000},
		{raw: " 17 700 ", want: 17700},
		{raw: "$850,000.00", want: 85000000},
		{raw: "-70,000", want: 70000},
		{raw: "99999999999999999999", want: 0},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, ParseText(tc.raw))
		})
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	require.True(t, IsSupportedCurrency(MXN))
	require.True(t, IsSupportedCurrency(USD))
	require.True(t, IsSupportedCurrency(EUR))
	require.False(t, IsSupportedCurrency("RUB"))
}

func TestNewFormatter(t *testing.T) {
	_, err := NewFormatter("es-MX", MXN)
	require.NoError(t, err)

	_, err = NewFormatter("not a locale!", MXN)
	require.ErrorIs(t, err, ErrInvalidLocale)

	_, err = NewFormatter("es-MX", "RUB")
	require.ErrorIs(t, err, ErrUnsupportedCurrency)

	_, err = NewFormatter("es-MX", "XXXX")
	require.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestFormatter(t *testing.T) {
	f, err := NewFormatter("es-MX", MXN)
	require.NoError(t, err)

	require.Equal(t, MXN, f.Currency())
	require.Equal(t, "850,000", f.Group(850000))
	require.Equal(t, "0", f.Group(0))

	require.Equal(t, "$850,000.00", f.Money(850000))
	require.Equal(t, "$995,000.00", f.Money(995000))
	require.Equal(t, "-$907,300.00", f.Money(-907300))
	require.Equal(t, "$0.00", f.Money(0))
	require.Equal(t, "$1.05", f.MoneyDecimal(decimal.RequireFromString("1.049")))
	require.Equal(t, "-$0.50", f.MoneyDecimal(decimal.RequireFromString("-0.5")))

	require.Equal(t, "", f.Echo(""))
	require.Equal(t, "", f.Echo("abc"))
	require.Equal(t, "850,000", f.Echo("850000"))
	require.Equal(t, "120,000", f.Echo("$120,000"))
	require.Equal(t, "", f.Echo("99999999999999999999"))

	usd, err := f.WithCurrency(USD)
	require.NoError(t, err)
	require.Equal(t, USD, usd.Currency())
	require.Equal(t, "US$120,000.00", usd.Money(120000))

	eur, err := f.WithCurrency(EUR)
	require.NoError(t, err)
	require.Equal(t, "€120,000.00", eur.Money(120000))
}

// Typing noise around the digits never changes the parsed amount.
func TestParseTextNoisy(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := randompkg.Amount(10_000_000)
		raw := randompkg.Noisy(strconv.FormatInt(n, 10))

		require.Equal(t, n, ParseText(raw), raw)
	}
}
