package domain

import "math/big"

// Money represents a monetary value with precise decimal arithmetic using
// big.Rat, avoiding floating-point drift in price computations.
type Money struct {
	rat *big.Rat
}

// MoneyFromFloat creates a Money from a catalog price column value.
func MoneyFromFloat(value float64) *Money {
	rat := new(big.Rat).SetFloat64(value)
	if rat == nil {
		rat = big.NewRat(0, 1)
	}
	return &Money{rat: rat}
}

// NewMoneyFromRat creates a Money from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Subtract returns this value minus other as a new Money.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat returns this value scaled by rat as a new Money.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// LessThan returns true if this value is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals returns true if this value equals other.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// Float64 returns an approximate float64 representation for display.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
