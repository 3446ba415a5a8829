package queries

import "context"

// GetOrderTotalsQueryHandler snapshots the derived charges of an order.
type GetOrderTotalsQueryHandler struct{}

func NewGetOrderTotalsQueryHandler() GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{}
}

// Handle computes subtotal, taxes and total from the order's current items.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) (GetOrderTotalsQueryResponse, error) {
	if err := ctx.Err(); err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}
	if err := query.Validate(); err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	o := query.Order()

	return GetOrderTotalsQueryResponse{
		OrderNumber: o.OrderNumber(),
		ItemCount:   len(o.Items()),
		Subtotal:    o.Subtotal(),
		Taxes:       o.Taxes(),
		Total:       o.Total(),
	}, nil
}
