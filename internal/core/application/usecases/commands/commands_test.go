package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"deliverynote/internal/core/application/usecases/commands"
	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRecipient() order.Recipient {
	return order.NewRecipient("Sarah Johnson", "sarah.johnson@example.com", "45 Knowledge Avenue, Dubai, UAE")
}

func referenceLines() []commands.ItemLine {
	return []commands.ItemLine{
		{Code: "ITM001", Description: "Wireless Keyboard", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(100.00)},
		{Code: "ITM002", Description: "Wireless Mouse & Pad Set", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(75.00)},
		{Code: "ITM003", Description: "Laptop Cooling Pad", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(120.00)},
		{Code: "ITM004", Description: "Camera Lock", Quantity: 3, UnitPrice: kernel.MoneyFromFloat(15.00)},
	}
}

func newReferenceOrder(t *testing.T) *order.DeliveryOrder {
	t.Helper()

	o, err := order.NewDeliveryOrder("DEL123456789", sampleRecipient(), decimal.NewFromInt(7), "Not specified", "")
	require.NoError(t, err)
	for _, line := range referenceLines() {
		item, err := order.NewItem(line.Code, line.Description, line.Quantity, line.UnitPrice)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}
	return o
}
