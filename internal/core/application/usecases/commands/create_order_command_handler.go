package commands

import (
	"context"
	"fmt"
	"log/slog"

	"deliverynote/internal/core/domain/model/order"
)

// CreateOrderCommandHandler builds a DeliveryOrder and its items from a
// CreateOrderCommand. Items are added in line order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(logger)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(o.Total()) // "357.00"
type CreateOrderCommandHandler struct {
	logger *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		logger: logger.With("component", "create_order_handler"),
	}
}

// Handle creates the order. If any line is rejected no order is returned and
// the error names the offending line.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.DeliveryOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewDeliveryOrder(
		cmd.OrderNumber(),
		cmd.Recipient(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.DeliveryMethod(),
	)
	if err != nil {
		return nil, err
	}

	for i, line := range cmd.Lines() {
		item, err := order.NewItem(line.Code, line.Description, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item line %d (%s): %w", i+1, line.Code, err)
		}
		if err = o.AddItem(item); err != nil {
			return nil, fmt.Errorf("item line %d (%s): %w", i+1, line.Code, err)
		}
	}

	h.logger.DebugContext(ctx, "Order created",
		"order_number", o.OrderNumber(),
		"order_id", o.ID().String(),
		"items", len(o.Items()),
		"total", o.Total().Fixed2(),
	)

	return o, nil
}
