package order

import (
	"errors"
	"fmt"
	"math"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/pkg/errs"
)

// Item is a single line of a delivery order: what was shipped, how many and at
// what unit price. Quantity and unit price stay mutable after creation and the
// line total is derived from them on every read.
type Item struct {
	code        string
	description string
	quantity    int
	unitPrice   kernel.Money
}

// NewItem creates an order line.
//
// A negative quantity is rejected with a *errs.ValueIsOutOfRangeError and a
// negative unit price with a *errs.ValueIsInvalidError; both failures are
// reported together.
//
// Example:
//
//	keyboard, err := order.NewItem("ITM001", "Wireless Keyboard", 1, kernel.MoneyFromFloat(100.00))
//	if err != nil {
//	    return err
//	}
func NewItem(code, description string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		code:        code,
		description: description,
	}

	if err := errors.Join(
		item.SetQuantity(quantity),
		item.SetUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Code returns the item code, e.g. "ITM001".
func (i *Item) Code() string {
	return i.code
}

// Description returns the free-text item description.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the number of units on this line.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// SetQuantity replaces the quantity. The item is unchanged on error.
func (i *Item) SetQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	i.quantity = quantity
	return nil
}

// SetUnitPrice replaces the unit price. The item is unchanged on error.
func (i *Item) SetUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is less than 0", unitPrice.Fixed2()),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

// TotalPrice returns quantity * unit price rounded to two decimals.
// It is recomputed on each call so updates through the setters are always reflected.
func (i *Item) TotalPrice() kernel.Money {
	return i.unitPrice.Mul(i.quantity).Round2()
}
