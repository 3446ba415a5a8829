package cmd

import (
	"context"
	"fmt"

	"deliverynote/internal/core/application/usecases/commands"
	"deliverynote/internal/core/application/usecases/queries"
	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/note"
	"deliverynote/internal/core/domain/model/order"
	"deliverynote/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// RunExample walks one order through the whole workflow: it captures the
// order, prints its delivery note, moves the shipment to the local
// distribution center and prints the delivery estimate.
func RunExample(ctx context.Context, root CompositionRoot) error {
	recipient := order.NewRecipient(
		"Sarah Johnson",
		"sarah.johnson@example.com",
		"45 Knowledge Avenue, Dubai, UAE",
	)
	lines := []commands.ItemLine{
		{Code: "ITM001", Description: "Wireless Keyboard", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(100.00)},
		{Code: "ITM002", Description: "Wireless Mouse & Pad Set", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(75.00)},
		{Code: "ITM003", Description: "Laptop Cooling Pad", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(120.00)},
		{Code: "ITM004", Description: "Camera Lock", Quantity: 3, UnitPrice: kernel.MoneyFromFloat(15.00)},
	}

	createCmd, err := commands.NewCreateOrderCommand(
		"DEL123456789", recipient, decimal.NewFromInt(7), "Not specified", order.DefaultDeliveryMethod, lines)
	if err != nil {
		return err
	}
	createHandler := root.CreateCreateOrderCommandHandler()
	o, err := createHandler.Handle(ctx, createCmd)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	totalsQuery, err := queries.NewGetOrderTotalsQuery(o)
	if err != nil {
		return err
	}
	totalsHandler := root.CreateGetOrderTotalsQueryHandler()
	totals, err := totalsHandler.Handle(ctx, totalsQuery)
	if err != nil {
		return fmt.Errorf("order totals: %w", err)
	}
	root.logger.InfoContext(ctx, "Order captured",
		"order_number", totals.OrderNumber,
		"items", totals.ItemCount,
		"total", totals.Total.Fixed2(),
	)

	noteCmd, err := commands.NewIssueDeliveryNoteCommand(root.config.NoteID, o)
	if err != nil {
		return err
	}
	noteHandler := root.CreateIssueDeliveryNoteCommandHandler()
	if _, err = noteHandler.Handle(ctx, noteCmd); err != nil {
		return fmt.Errorf("issue delivery note: %w", err)
	}

	tracker, err := root.TrackShipment(o.OrderNumber())
	if err != nil {
		return err
	}
	status, location := shipment.InTransit, "Local Distribution Center"
	updateCmd, err := commands.NewUpdateShipmentCommand(tracker, &status, &location)
	if err != nil {
		return err
	}
	updateHandler := root.CreateUpdateShipmentCommandHandler()
	eta, err := updateHandler.Handle(ctx, updateCmd)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}

	_, err = fmt.Fprintln(root.out, "Estimated Delivery Time:", eta.Format(note.DateLayout))
	return err
}
