// Package amountpkg provides the fixed-point decimal type used for all
// monetary values.
package amountpkg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat indicates that the text is not a valid amount.
	ErrInvalidFormat = errors.New("invalid amount format")
	// ErrTooLarge indicates that the value does not fit the amount range.
	ErrTooLarge = errors.New("amount too large")
	// ErrOverflow indicates that an addition would exceed the amount range.
	ErrOverflow = errors.New("amount overflow")
	// ErrUnderflow indicates that a subtraction would go below zero.
	ErrUnderflow = errors.New("amount underflow")
)

// Amount is an exact unsigned decimal with four fractional digits, stored as
// a count of ten-thousandths. The largest representable value is
// math.MaxUint64 / 10000, that is, 1844674407370955.1615.
//
// An alternative would be an arbitrary-precision decimal, trading overflow
// handling for memory. Currency amounts in this domain are bounded, so the
// scaled integer keeps arithmetic exact and overflow observable.
type Amount struct {
	units uint64
}

// Max is the largest representable Amount.
var Max = Amount{units: math.MaxUint64}

// FromUnits returns the Amount holding the given count of ten-thousandths.
func FromUnits(units uint64) Amount {
	return Amount{units: units}
}

// Units returns the amount as a count of ten-thousandths.
func (a Amount) Units() uint64 {
	return a.units
}

// CheckedAdd returns the exact sum or ErrOverflow.
func (a Amount) CheckedAdd(b Amount) (Amount, error) {
	sum := a.units + b.units
	if sum < a.units {
		return Amount{}, ErrOverflow
	}

	return Amount{units: sum}, nil
}

// CheckedSub returns the exact difference or ErrUnderflow when b > a.
// Amounts are non-negative, so subtraction below zero is an error rather
// than a negative result.
func (a Amount) CheckedSub(b Amount) (Amount, error) {
	if b.units > a.units {
		return Amount{}, ErrUnderflow
	}

	return Amount{units: a.units - b.units}, nil
}

// Less reports whether a is strictly smaller than b.
func (a Amount) Less(b Amount) bool {
	return a.units < b.units
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// String renders the integer part followed by exactly four fractional
// digits, zero-padded. Always writing all four digits keeps the format
// unambiguous and easy for consumers to parse.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%04d", a.units/10000, a.units%10000)
}

// Parse converts text of the form "123" or "123.4567" into an Amount.
//
// The fractional part may hold 0 to 4 digits and is zero-padded on the
// right, so "1.5" equals "1.5000". Leading zeroes in the integer part are
// permitted and dropped. Anything else fails with ErrInvalidFormat; values
// that do not fit the representable range fail with ErrTooLarge.
func Parse(s string) (Amount, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if intPart == "" || !digitsOnly(intPart) {
		return Amount{}, ErrInvalidFormat
	}

	if hasFrac && (fracPart == "" || len(fracPart) > 4 || !digitsOnly(fracPart)) {
		return Amount{}, ErrInvalidFormat
	}

	integer, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return Amount{}, ErrTooLarge
		}
		// digitsOnly guarantees a syntactically valid number; anything but a
		// range failure is a bug in this package.
		panic(fmt.Sprintf("amountpkg: unexpected ParseUint error: %v", err))
	}

	var frac uint64
	if hasFrac {
		frac = parseFracPart(fracPart)
	}

	if integer > math.MaxUint64/10000 {
		return Amount{}, ErrTooLarge
	}

	units := integer * 10000
	if units > math.MaxUint64-frac {
		return Amount{}, ErrTooLarge
	}

	return Amount{units: units + frac}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parseFracPart scales an up to four digit fractional part into
// ten-thousandths: "1" becomes 1000, "123" becomes 1230, "1234" stays 1234.
func parseFracPart(s string) uint64 {
	frac, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("amountpkg: unexpected fractional part %q: %v", s, err))
	}

	for i := len(s); i < 4; i++ {
		frac *= 10
	}

	return frac
}
