package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Money represents a monetary value with exact decimal arithmetic using big.Rat.
// Values are never rounded while stored; String rounds to cents for display.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(9999, 100) represents $99.99
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(numerator, denominator int64) *Money {
	m, err := NewMoney(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string such as "99.99" or "1000".
func ParseMoney(s string) (*Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty money value")
	}
	// big.Rat also accepts "a/b" fractions and exponents; a price is a plain decimal.
	if strings.ContainsAny(s, "/eE") {
		return nil, fmt.Errorf("invalid money value %q", s)
	}

	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid money value %q", s)
	}
	return &Money{rat: rat}, nil
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Zero returns a zero Money value.
func Zero() *Money {
	return &Money{rat: new(big.Rat)}
}

// Numerator returns the numerator in lowest terms and whether it fits in an int64.
func (m *Money) Numerator() (int64, bool) {
	num := m.rat.Num()
	return num.Int64(), num.IsInt64()
}

// Denominator returns the denominator in lowest terms and whether it fits in an int64.
func (m *Money) Denominator() (int64, bool) {
	denom := m.rat.Denom()
	return denom.Int64(), denom.IsInt64()
}

// IsSafeForStorage reports whether the value can be persisted as an int64 fraction.
func (m *Money) IsSafeForStorage() bool {
	_, numOK := m.Numerator()
	_, denomOK := m.Denominator()
	return numOK && denomOK
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyByInt multiplies by an integer factor, e.g. a line quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	factor := new(big.Rat).SetInt64(n)
	return &Money{rat: new(big.Rat).Mul(m.rat, factor)}
}

// Cmp compares two values and returns -1, 0 or +1.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// String returns the value rounded to two decimal places, halves away from zero.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
