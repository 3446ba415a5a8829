package queries

import (
	"errors"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/order"
	"deliverynote/internal/pkg/guard"
)

var (
	ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
		"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
	)
	ErrOrderIsRequired = errors.New("order is required")
)

// GetOrderTotalsQuery reads the charges of an order without printing a note.
//
// Example:
//
//	query, err := NewGetOrderTotalsQuery(o)
//	if err != nil {
//	    return err
//	}
//	totals, err := NewGetOrderTotalsQueryHandler().Handle(ctx, query)
//	fmt.Printf("%s: AED %s\n", totals.OrderNumber, totals.Total.Fixed2())
type GetOrderTotalsQuery struct {
	order *order.DeliveryOrder

	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a totals query for o.
func NewGetOrderTotalsQuery(o *order.DeliveryOrder) (GetOrderTotalsQuery, error) {
	if o == nil {
		return GetOrderTotalsQuery{}, ErrOrderIsRequired
	}
	if err := o.Validate(); err != nil {
		return GetOrderTotalsQuery{}, err
	}

	return GetOrderTotalsQuery{order: o, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

func (q GetOrderTotalsQuery) Order() *order.DeliveryOrder {
	return q.order
}

// GetOrderTotalsQueryResponse is a snapshot of an order's charges.
// Total always equals Subtotal + Taxes.
type GetOrderTotalsQueryResponse struct {
	OrderNumber string
	ItemCount   int
	Subtotal    kernel.Money
	Taxes       kernel.Money
	Total       kernel.Money
}
