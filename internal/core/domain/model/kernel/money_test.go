package kernel_test

import (
	"testing"

	"deliverynote/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply by quantity exactly", func(t *testing.T) {
		m := kernel.MoneyFromFloat(15.00).Mul(3)

		assert.Equal(t, "45.00", m.Fixed2())
	})

	t.Run("should add without binary float drift", func(t *testing.T) {
		m := kernel.MoneyFromFloat(0.1).Add(kernel.MoneyFromFloat(0.2))

		assert.True(t, m.Equal(kernel.MoneyFromFloat(0.3)))
	})

	t.Run("should apply a rate", func(t *testing.T) {
		m := kernel.MoneyFromFloat(340).MulRate(decimal.RequireFromString("0.05"))

		assert.True(t, m.Equal(kernel.MoneyFromFloat(17)))
	})

	t.Run("should report negative amounts", func(t *testing.T) {
		assert.True(t, kernel.MoneyFromFloat(-0.01).IsNegative())
		assert.False(t, kernel.MoneyFromFloat(0).IsNegative())
		assert.False(t, kernel.Money{}.IsNegative())
	})
}

func TestMoney_Round2(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"0.125", "0.12"},
		{"0.135", "0.14"},
		{"10.004", "10.00"},
		{"10.006", "10.01"},
		{"17", "17.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := kernel.MoneyFromString(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, m.Round2().Fixed2())
		})
	}
}

func TestMoney_Formatting(t *testing.T) {
	t.Run("Plain keeps one fractional digit for whole amounts", func(t *testing.T) {
		assert.Equal(t, "340.0", kernel.MoneyFromFloat(340).Plain())
		assert.Equal(t, "357.0", kernel.MoneyFromFloat(357.00).Plain())
	})

	t.Run("Plain keeps significant fractional digits", func(t *testing.T) {
		assert.Equal(t, "17.15", kernel.MoneyFromFloat(17.15).Plain())
		assert.Equal(t, "2.5", kernel.MoneyFromFloat(2.50).Plain())
	})

	t.Run("Fixed2 and String always show two decimals", func(t *testing.T) {
		m := kernel.MoneyFromFloat(75)

		assert.Equal(t, "75.00", m.Fixed2())
		assert.Equal(t, "75.00", m.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("120.00")

		require.NoError(t, err)
		assert.True(t, m.Equal(kernel.MoneyFromFloat(120)))
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid money amount "twelve"`)
	})
}
