package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomerID(t *testing.T) order.CustomerID {
	t.Helper()
	id, err := order.CustomerIDFrom(kernel.NewUUID())
	require.NoError(t, err)
	return id
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustCustomerID(t))
	require.NoError(t, err)
	return o
}

func newOrderWithItem(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY")))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending with no items", func(t *testing.T) {
		customerID := mustCustomerID(t)

		o, err := order.NewOrder(customerID)
		require.NoError(t, err)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.ItemCount())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		require.NoError(t, o.ID().Validate())
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Second)
	})

	t.Run("each order gets a distinct id", func(t *testing.T) {
		first := newPendingOrder(t)
		second := newPendingOrder(t)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("rejects a zero value customer id", func(t *testing.T) {
		var customerID order.CustomerID

		_, err := order.NewOrder(customerID)
		require.Error(t, err)
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("adds validated lines while pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AddItem(mustProductID(t), 2, mustPrice(t, "1000", "JPY")))
		require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "500", "JPY")))

		assert.Equal(t, 2, o.ItemCount())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AddItem(mustProductID(t), 0, mustPrice(t, "1000", "JPY"))
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Equal(t, 0, o.ItemCount())
	})

	t.Run("rejects a second currency", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY")))

		err := o.AddItem(mustProductID(t), 1, mustPrice(t, "10", "USD"))
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("fails once the order is confirmed", func(t *testing.T) {
		o := newOrderWithItem(t)
		require.NoError(t, o.Confirm())

		err := o.AddItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY"))
		assert.ErrorIs(t, err, order.ErrOrderAlreadyConfirmed)
	})

	t.Run("fails on a cancelled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.AddItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY"))
		assert.ErrorIs(t, err, order.ErrOrderAlreadyConfirmed)
	})
}

func TestOrderRemoveItem(t *testing.T) {
	t.Run("removes the matching line", func(t *testing.T) {
		o := newPendingOrder(t)
		productID := mustProductID(t)
		require.NoError(t, o.AddItem(productID, 1, mustPrice(t, "1000", "JPY")))
		require.NoError(t, o.AddItem(mustProductID(t), 2, mustPrice(t, "500", "JPY")))

		require.NoError(t, o.RemoveItem(productID))

		assert.Equal(t, 1, o.ItemCount())
		for _, item := range o.Items() {
			assert.False(t, item.ProductID().IsEqual(productID))
		}
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		o := newOrderWithItem(t)

		require.NoError(t, o.RemoveItem(mustProductID(t)))
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("fails once the order is confirmed", func(t *testing.T) {
		o := newOrderWithItem(t)
		productID := o.Items()[0].ProductID()
		require.NoError(t, o.Confirm())

		err := o.RemoveItem(productID)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyConfirmed)
		assert.Equal(t, 1, o.ItemCount())
	})
}

func TestOrderConfirm(t *testing.T) {
	t.Run("confirms a pending order with items", func(t *testing.T) {
		o := newOrderWithItem(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("fails on an empty order and keeps status", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Confirm()
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("fails on an already confirmed order", func(t *testing.T) {
		o := newOrderWithItem(t)
		require.NoError(t, o.Confirm())

		err := o.Confirm()
		assert.ErrorIs(t, err, order.ErrOrderAlreadyConfirmed)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrderMarkAsPaid(t *testing.T) {
	t.Run("pays a confirmed order", func(t *testing.T) {
		o := newOrderWithItem(t)
		require.NoError(t, o.Confirm())

		require.NoError(t, o.MarkAsPaid())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("fails on a pending order", func(t *testing.T) {
		o := newOrderWithItem(t)

		err := o.MarkAsPaid()
		assert.ErrorIs(t, err, order.ErrOrderNotConfirmed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("fails on an already paid order", func(t *testing.T) {
		o := newOrderWithItem(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.MarkAsPaid())

		err := o.MarkAsPaid()
		assert.ErrorIs(t, err, order.ErrOrderNotConfirmed)
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("cancels pending confirmed and paid orders", func(t *testing.T) {
		pending := newOrderWithItem(t)
		require.NoError(t, pending.Cancel())
		assert.Equal(t, order.Cancelled, pending.Status())

		confirmed := newOrderWithItem(t)
		require.NoError(t, confirmed.Confirm())
		require.NoError(t, confirmed.Cancel())
		assert.Equal(t, order.Cancelled, confirmed.Status())

		paid := newOrderWithItem(t)
		require.NoError(t, paid.Confirm())
		require.NoError(t, paid.MarkAsPaid())
		require.NoError(t, paid.Cancel())
		assert.Equal(t, order.Cancelled, paid.Status())
	})

	t.Run("fails on shipped and delivered orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Delivered} {
			o, err := order.RestoreOrder(
				order.NewOrderID(), mustCustomerID(t), status, time.Now(), nil,
			)
			require.NoError(t, err)

			cancelErr := o.Cancel()
			assert.ErrorIs(t, cancelErr, order.ErrOrderCannotBeCancelled)
			assert.Equal(t, status, o.Status())
		}
	})
}

func TestOrderTotal(t *testing.T) {
	t.Run("sums item subtotals", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem(mustProductID(t), 2, mustPrice(t, "1000", "JPY")))
		require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "500", "JPY")))

		total := o.Total()
		assert.True(t, total.IsEqual(mustPrice(t, "2500", "JPY")))
	})

	t.Run("empty order totals zero in the default currency", func(t *testing.T) {
		o := newPendingOrder(t)

		total := o.Total()
		assert.True(t, total.IsZero())
		assert.Equal(t, kernel.DefaultCurrency, total.Currency())
	})

	t.Run("total survives confirmation", func(t *testing.T) {
		o := newOrderWithItem(t)
		require.NoError(t, o.Confirm())

		assert.True(t, o.Total().IsEqual(mustPrice(t, "1000", "JPY")))
	})
}

func TestOrderItemsEncapsulation(t *testing.T) {
	t.Run("returned slice is a defensive copy", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY")))

		items := o.Items()
		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
		assert.Equal(t, 1, o.ItemCount())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rehydrates persisted state without re-running transitions", func(t *testing.T) {
		id := order.NewOrderID()
		customerID := mustCustomerID(t)
		createdAt := time.Now().Add(-time.Hour)

		item, err := order.NewItem(mustProductID(t), 2, mustPrice(t, "1000", "JPY"))
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, customerID, order.Paid, createdAt, []order.Item{item})
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 1, o.ItemCount())
		assert.True(t, o.Total().IsEqual(mustPrice(t, "2000", "JPY")))
	})

	t.Run("rejects a zero value identifier", func(t *testing.T) {
		var id order.OrderID

		_, err := order.RestoreOrder(id, mustCustomerID(t), order.Pending, time.Now(), nil)
		require.Error(t, err)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			order.NewOrderID(), mustCustomerID(t), order.Unknown, time.Now(), nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := order.RestoreOrder(
			order.NewOrderID(), mustCustomerID(t), order.Pending, time.Now(),
			[]order.Item{{}},
		)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		item, err := order.NewItem(mustProductID(t), 1, mustPrice(t, "1000", "JPY"))
		require.NoError(t, err)

		items := []order.Item{item}
		o, err := order.RestoreOrder(
			order.NewOrderID(), mustCustomerID(t), order.Pending, time.Now(), items,
		)
		require.NoError(t, err)

		items[0] = order.Item{}
		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrderLifecycleScenario(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AddItem(mustProductID(t), 2, mustPrice(t, "1000", "JPY")))
		require.NoError(t, o.AddItem(mustProductID(t), 1, mustPrice(t, "500", "JPY")))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.MarkAsPaid())

		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Total().IsEqual(mustPrice(t, "2500", "JPY")))
	})

	t.Run("validate rejects a zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
