package order

import (
	"errors"
	"fmt"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultDeliveryMethod is used when an order is created without a method.
const DefaultDeliveryMethod = "Courier"

var taxRate = decimal.RequireFromString("0.05")

// TaxRate returns the flat rate applied to every order's subtotal (5%).
func TaxRate() decimal.Decimal {
	return taxRate
}

var (
	// ErrOrderIsNotConstructed is returned when a DeliveryOrder was not created
	// through NewDeliveryOrder.
	ErrOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")

	// ErrItemIsRequired is returned when AddItem receives a nil item.
	ErrItemIsRequired = errs.NewValueIsRequiredError("item")
)

// DeliveryOrder is the aggregate root of the module. It holds the recipient,
// the shipment metadata and the ordered sequence of items, and derives the
// charges from the items on demand.
//
// DeliveryOrder follows these invariants:
//   - Must have an order number and a valid identity
//   - Items keep the order in which they were added; duplicates are allowed
//   - Subtotal, taxes and total are never stored, so total == subtotal + taxes
//     holds after any item mutation
type DeliveryOrder struct {
	// id is the aggregate identity, independent of the order number
	id kernel.UUID

	// orderNumber is the human-facing reference, e.g. "DEL123456789"
	orderNumber string

	recipient Recipient

	// items are kept in insertion order
	items []*Item

	// weight in kilograms
	weight decimal.Decimal

	// dimensions is free text, e.g. "30x20x10 cm" or "Not specified"
	dimensions string

	deliveryMethod string

	isConstructed bool
}

// NewDeliveryOrder creates an order without items.
//
// Parameters:
//   - orderNumber: business reference printed on the delivery note (required)
//   - recipient: who receives the parcel
//   - weight: total weight in kilograms (must not be negative)
//   - dimensions: free-text package dimensions
//   - deliveryMethod: e.g. "Courier"; empty falls back to DefaultDeliveryMethod
//
// Example:
//
//	recipient := order.NewRecipient("Sarah Johnson", "sarah.johnson@example.com", "45 Knowledge Avenue, Dubai, UAE")
//	o, err := order.NewDeliveryOrder("DEL123456789", recipient, decimal.NewFromInt(7), "Not specified", "")
//	if err != nil {
//	    // Handle validation error
//	}
func NewDeliveryOrder(
	orderNumber string,
	recipient Recipient,
	weight decimal.Decimal,
	dimensions string,
	deliveryMethod string,
) (*DeliveryOrder, error) {
	o := &DeliveryOrder{
		id:            kernel.NewUUID(),
		recipient:     recipient,
		dimensions:    dimensions,
		isConstructed: true,
	}
	o.SetDeliveryMethod(deliveryMethod)

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through NewDeliveryOrder.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by aggregate identity.
func (o *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the aggregate identity.
func (o *DeliveryOrder) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the business reference of the order.
func (o *DeliveryOrder) OrderNumber() string {
	return o.orderNumber
}

// Recipient returns the recipient details.
func (o *DeliveryOrder) Recipient() Recipient {
	return o.recipient
}

// Items returns the order lines in insertion order. The slice is a copy, but
// the items are shared with the order, so SetQuantity and SetUnitPrice on a
// returned item are reflected in the order's charges.
func (o *DeliveryOrder) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Weight returns the package weight in kilograms.
func (o *DeliveryOrder) Weight() decimal.Decimal {
	return o.weight
}

// Dimensions returns the free-text package dimensions.
func (o *DeliveryOrder) Dimensions() string {
	return o.dimensions
}

// DeliveryMethod returns how the order is delivered, e.g. "Courier".
func (o *DeliveryOrder) DeliveryMethod() string {
	return o.deliveryMethod
}

// SetDeliveryMethod replaces the delivery method. An empty method resets it
// to DefaultDeliveryMethod.
func (o *DeliveryOrder) SetDeliveryMethod(method string) {
	if method == "" {
		method = DefaultDeliveryMethod
	}
	o.deliveryMethod = method
}

// AddItem appends an item to the end of the order. No identity check is made:
// adding the same item twice lists and charges it twice.
func (o *DeliveryOrder) AddItem(item *Item) error {
	if item == nil {
		return ErrItemIsRequired
	}
	o.items = append(o.items, item)
	return nil
}

// Subtotal returns the sum of the item totals. Each item total is already
// rounded to two decimals, so the sum needs no further rounding.
func (o *DeliveryOrder) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	return subtotal
}

// Taxes returns the subtotal multiplied by the 5% tax rate, rounded to two decimals.
func (o *DeliveryOrder) Taxes() kernel.Money {
	return o.Subtotal().MulRate(taxRate).Round2()
}

// Total returns subtotal plus taxes, rounded to two decimals.
func (o *DeliveryOrder) Total() kernel.Money {
	return o.Subtotal().Add(o.Taxes()).Round2()
}

func (o *DeliveryOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *DeliveryOrder) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%s is less than 0", weight))
	}
	o.weight = weight
	return nil
}
