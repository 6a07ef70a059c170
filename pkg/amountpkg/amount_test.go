package amountpkg

import (
	"math"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// maxString is math.MaxUint64 with the decimal point four digits from the
// right, the largest parseable amount.
func maxString(t *testing.T) string {
	t.Helper()

	s := strconv.FormatUint(math.MaxUint64, 10)

	return s[:len(s)-4] + "." + s[len(s)-4:]
}

func TestParseRoundTrip(t *testing.T) {
	testCases := []string{
		"1234.5678",
		"1234.0001",
		"1234.1000",
		"0.5678",
		"0.0000",
	}

	for _, s := range testCases {
		t.Run(s, func(t *testing.T) {
			a, err := Parse(s)
			require.NoError(t, err)
			require.Equal(t, s, a.String())
		})
	}
}

func TestParsePadsFractionalDigits(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1234", "1234.0000"},
		{"1234.1", "1234.1000"},
		{"1234.12", "1234.1200"},
		{"1234.123", "1234.1230"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			a, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, a.String())
		})
	}
}

func TestParseLeadingZeroes(t *testing.T) {
	// Leading zeroes are permitted but dropped when formatting.
	a, err := Parse("0001234.0005")
	require.NoError(t, err)

	want, err := Parse("1234.0005")
	require.NoError(t, err)

	require.Equal(t, want, a)
	require.Equal(t, "1234.0005", a.String())
}

func TestParseInvalidFormat(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"non-number integer part", "a"},
		{"non-number decimal part", "0.a"},
		{"dot without decimal part", "1234."},
		{"dot without integer part", ".5"},
		{"too many decimal digits", "0.12345"},
		{"negative", "-1.0"},
		{"inner space", "1 .0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParseMaxValue(t *testing.T) {
	a, err := Parse(maxString(t))
	require.NoError(t, err)
	require.Equal(t, Max, a)
}

func TestParseTooLarge(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"one past max", "1844674407370955.1616"},
		{"huge integer part", "18446744073709551616"},
		{"huge with fraction", "18446744073709551616.0001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestCheckedAdd(t *testing.T) {
	a, err := Parse("1.5")
	require.NoError(t, err)
	b, err := Parse("2.25")
	require.NoError(t, err)

	sum, err := a.CheckedAdd(b)
	require.NoError(t, err)
	require.Equal(t, "3.7500", sum.String())

	_, err = Max.CheckedAdd(FromUnits(1))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	a, err := Parse("3.75")
	require.NoError(t, err)
	b, err := Parse("1.5")
	require.NoError(t, err)

	diff, err := a.CheckedSub(b)
	require.NoError(t, err)
	require.Equal(t, "2.2500", diff.String())

	_, err = b.CheckedSub(a)
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestTextRoundTrip(t *testing.T) {
	a, err := Parse("42.0001")
	require.NoError(t, err)

	text, err := a.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "42.0001", string(text))

	var b Amount
	require.NoError(t, b.UnmarshalText(text))
	require.Equal(t, a, b)

	require.ErrorIs(t, b.UnmarshalText([]byte("nope")), ErrInvalidFormat)
}

// TestDecimalOracle cross-checks parsing and arithmetic against
// arbitrary-precision decimals.
func TestDecimalOracle(t *testing.T) {
	inputs := []string{"0", "0.0001", "1", "12.34", "9999.9999", "1844674407370955.1615"}

	for _, s := range inputs {
		a, err := Parse(s)
		require.NoError(t, err)

		want, err := decimal.NewFromString(s)
		require.NoError(t, err)

		got, err := decimal.NewFromString(a.String())
		require.NoError(t, err)
		require.True(t, want.Equal(got), "Parse(%q): want %s, got %s", s, want, got)
	}

	for _, pair := range [][2]string{{"12.34", "0.0001"}, {"0.5", "0.5"}, {"9999.9999", "1.0"}} {
		a, err := Parse(pair[0])
		require.NoError(t, err)
		b, err := Parse(pair[1])
		require.NoError(t, err)

		sum, err := a.CheckedAdd(b)
		require.NoError(t, err)

		da, _ := decimal.NewFromString(pair[0])
		db, _ := decimal.NewFromString(pair[1])
		require.Equal(t, da.Add(db).StringFixed(4), sum.String())

		diff, err := a.CheckedSub(b)
		require.NoError(t, err)
		require.Equal(t, da.Sub(db).StringFixed(4), diff.String())
	}
}
