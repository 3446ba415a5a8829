package queries_test

import (
	"context"
	"testing"

	"deliverynote/internal/core/application/usecases/queries"
	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) (*order.DeliveryOrder, *order.Item) {
	t.Helper()

	recipient := order.NewRecipient("Sarah Johnson", "sarah.johnson@example.com", "45 Knowledge Avenue, Dubai, UAE")
	o, err := order.NewDeliveryOrder("DEL123456789", recipient, decimal.NewFromInt(7), "Not specified", "")
	require.NoError(t, err)

	keyboard, err := order.NewItem("ITM001", "Wireless Keyboard", 1, kernel.MoneyFromFloat(100))
	require.NoError(t, err)
	lock, err := order.NewItem("ITM004", "Camera Lock", 3, kernel.MoneyFromFloat(15))
	require.NoError(t, err)
	require.NoError(t, o.AddItem(keyboard))
	require.NoError(t, o.AddItem(lock))

	return o, lock
}

func TestNewGetOrderTotalsQuery(t *testing.T) {
	t.Run("should be valid for a constructed order", func(t *testing.T) {
		o, _ := newOrder(t)

		query, err := queries.NewGetOrderTotalsQuery(o)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Same(t, o, query.Order())
	})

	t.Run("should require an order", func(t *testing.T) {
		_, err := queries.NewGetOrderTotalsQuery(nil)

		require.ErrorIs(t, err, queries.ErrOrderIsRequired)
	})

	t.Run("should reject a zero value order", func(t *testing.T) {
		_, err := queries.NewGetOrderTotalsQuery(&order.DeliveryOrder{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should detect a zero value query", func(t *testing.T) {
		query := queries.GetOrderTotalsQuery{}

		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderTotalsQueryIsNotConstructed)
	})
}

func TestGetOrderTotalsQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetOrderTotalsQueryHandler()

	t.Run("should snapshot the charges", func(t *testing.T) {
		o, _ := newOrder(t)
		query, err := queries.NewGetOrderTotalsQuery(o)
		require.NoError(t, err)

		totals, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, "DEL123456789", totals.OrderNumber)
		assert.Equal(t, 2, totals.ItemCount)
		assert.Equal(t, "145.00", totals.Subtotal.Fixed2())
		assert.Equal(t, "7.25", totals.Taxes.Fixed2())
		assert.Equal(t, "152.25", totals.Total.Fixed2())
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Taxes)))
	})

	t.Run("should reflect item changes made after the query was built", func(t *testing.T) {
		o, lock := newOrder(t)
		query, err := queries.NewGetOrderTotalsQuery(o)
		require.NoError(t, err)

		require.NoError(t, lock.SetQuantity(1))
		totals, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, "115.00", totals.Subtotal.Fixed2())
		assert.Equal(t, "120.75", totals.Total.Fixed2())
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.GetOrderTotalsQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderTotalsQueryIsNotConstructed)
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		o, _ := newOrder(t)
		query, err := queries.NewGetOrderTotalsQuery(o)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, context.Canceled)
	})
}
