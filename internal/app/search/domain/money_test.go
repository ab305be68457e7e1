package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := MoneyFromFloat(100)
	b := MoneyFromFloat(30)

	diff := a.Subtract(b)
	assert.Equal(t, "70.00", diff.String())
	// Operands stay untouched.
	assert.Equal(t, "100.00", a.String())
	assert.Equal(t, "30.00", b.String())

	scaled := a.MultiplyByRat(big.NewRat(1, 4))
	assert.Equal(t, "25.00", scaled.String())
}

func TestMoney_Comparisons(t *testing.T) {
	a := MoneyFromFloat(9.99)
	b := MoneyFromFloat(10)

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.False(t, a.LessThan(a))
	assert.True(t, a.Equals(MoneyFromFloat(9.99)))
	assert.False(t, a.Equals(b))
}

func TestMoney_IsZero(t *testing.T) {
	assert.True(t, MoneyFromFloat(0).IsZero())
	assert.False(t, MoneyFromFloat(0.01).IsZero())
	assert.True(t, MoneyFromFloat(5).Subtract(MoneyFromFloat(5)).IsZero())
}

func TestNewMoneyFromRat(t *testing.T) {
	rat := big.NewRat(199, 10)
	m := NewMoneyFromRat(rat)
	assert.Equal(t, "19.90", m.String())

	// The Money holds its own copy of the rat.
	rat.SetInt64(5)
	assert.Equal(t, "19.90", m.String())

	assert.True(t, NewMoneyFromRat(nil).IsZero())
}

func TestMoney_Copy(t *testing.T) {
	a := MoneyFromFloat(12.5)
	c := a.Copy()
	assert.True(t, a.Equals(c))
	assert.NotSame(t, a, c)
}

func TestMoney_Float64(t *testing.T) {
	assert.InDelta(t, 19.99, MoneyFromFloat(19.99).Float64(), 1e-9)
}
