package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount, currency string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(1000), "JPY")

		require.NoError(t, err)
		assert.Equal(t, "JPY", m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(1000)))
		require.NoError(t, m.Validate())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects currency that is not three letters", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "YEN!")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects lowercase currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "jpy")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("allows negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(-500), "USD")

		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal strings exactly", func(t *testing.T) {
		m := mustMoney(t, "19.99", "USD")
		assert.Equal(t, "19.99 USD", m.String())
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("abc", "USD")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("empty currency falls back to default", func(t *testing.T) {
		m := kernel.ZeroMoney("")

		assert.Equal(t, kernel.DefaultCurrency, m.Currency())
		assert.True(t, m.IsZero())
		require.NoError(t, m.Validate())
	})

	t.Run("keeps the given currency", func(t *testing.T) {
		m := kernel.ZeroMoney("EUR")
		assert.Equal(t, "EUR", m.Currency())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add sums amounts of the same currency", func(t *testing.T) {
		a := mustMoney(t, "1000", "JPY")
		b := mustMoney(t, "500", "JPY")

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.IsEqual(mustMoney(t, "1500", "JPY")))
	})

	t.Run("add does not mutate operands", func(t *testing.T) {
		a := mustMoney(t, "1000", "JPY")
		b := mustMoney(t, "500", "JPY")

		_, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, a.IsEqual(mustMoney(t, "1000", "JPY")))
		assert.True(t, b.IsEqual(mustMoney(t, "500", "JPY")))
	})

	t.Run("add fails on currency mismatch", func(t *testing.T) {
		a := mustMoney(t, "1000", "JPY")
		b := mustMoney(t, "10", "USD")

		_, err := a.Add(b)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
		assert.Contains(t, err.Error(), "JPY")
		assert.Contains(t, err.Error(), "USD")
	})

	t.Run("subtract computes the difference", func(t *testing.T) {
		a := mustMoney(t, "19.99", "USD")
		b := mustMoney(t, "4.99", "USD")

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.IsEqual(mustMoney(t, "15.00", "USD")))
	})

	t.Run("subtract can go negative", func(t *testing.T) {
		a := mustMoney(t, "100", "JPY")
		b := mustMoney(t, "300", "JPY")

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("subtract fails on currency mismatch", func(t *testing.T) {
		a := mustMoney(t, "100", "JPY")
		b := mustMoney(t, "100", "EUR")

		_, err := a.Subtract(b)
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("multiply scales the amount and keeps the currency", func(t *testing.T) {
		price := mustMoney(t, "19.99", "USD")

		total := price.Multiply(decimal.NewFromInt(3))
		assert.True(t, total.IsEqual(mustMoney(t, "59.97", "USD")))
	})

	t.Run("multiply int covers quantity scaling", func(t *testing.T) {
		price := mustMoney(t, "1000", "JPY")

		total := price.MultiplyInt(2)
		assert.True(t, total.IsEqual(mustMoney(t, "2000", "JPY")))
	})

	t.Run("divide splits the amount", func(t *testing.T) {
		total := mustMoney(t, "3000", "JPY")

		each, err := total.Divide(decimal.NewFromInt(3))
		require.NoError(t, err)
		assert.True(t, each.IsEqual(mustMoney(t, "1000", "JPY")))
	})

	t.Run("divide by zero fails", func(t *testing.T) {
		total := mustMoney(t, "3000", "JPY")

		_, err := total.Divide(decimal.Zero)
		assert.ErrorIs(t, err, kernel.ErrDivisionByZero)
	})
}

func TestMoneyPredicates(t *testing.T) {
	t.Run("zero positive negative", func(t *testing.T) {
		zero := kernel.ZeroMoney("JPY")
		positive := mustMoney(t, "1", "JPY")
		negative := mustMoney(t, "-1", "JPY")

		assert.True(t, zero.IsZero())
		assert.False(t, zero.IsPositive())
		assert.False(t, zero.IsNegative())

		assert.True(t, positive.IsPositive())
		assert.False(t, positive.IsZero())

		assert.True(t, negative.IsNegative())
		assert.False(t, negative.IsPositive())
	})
}

func TestMoneyIsEqual(t *testing.T) {
	t.Run("compares numerically across representations", func(t *testing.T) {
		a := mustMoney(t, "10", "USD")
		b := mustMoney(t, "10.00", "USD")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different currencies are never equal", func(t *testing.T) {
		a := mustMoney(t, "10", "USD")
		b := mustMoney(t, "10", "EUR")

		assert.False(t, a.IsEqual(b))
	})

	t.Run("different amounts are not equal", func(t *testing.T) {
		a := mustMoney(t, "10", "USD")
		b := mustMoney(t, "10.01", "USD")

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoneyValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("operations on zero value fail", func(t *testing.T) {
		var m kernel.Money
		valid := mustMoney(t, "10", "USD")

		_, err := m.Add(valid)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)

		_, err = valid.Add(m)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
