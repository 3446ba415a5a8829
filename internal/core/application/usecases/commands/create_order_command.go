package commands

import (
	"errors"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/order"
	"deliverynote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrItemLinesAreRequired  = errors.New("at least one item line is required")
)

// ItemLine describes one item to add to a new order.
type ItemLine struct {
	Code        string
	Description string
	Quantity    int
	UnitPrice   kernel.Money
}

// CreateOrderCommand represents a request to capture a new delivery order with
// its items. Item values themselves are validated by the order model when the
// command is handled.
//
// Example:
//
//	recipient := order.NewRecipient("Sarah Johnson", "sarah.johnson@example.com", "45 Knowledge Avenue, Dubai, UAE")
//	cmd, err := NewCreateOrderCommand("DEL123456789", recipient, decimal.NewFromInt(7), "Not specified", "",
//	    []ItemLine{{Code: "ITM001", Description: "Wireless Keyboard", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(100)}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber    string
	recipient      order.Recipient
	weight         decimal.Decimal
	dimensions     string
	deliveryMethod string
	lines          []ItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that the order number is set and that there
// is at least one item line. An empty delivery method means the default one.
func NewCreateOrderCommand(
	orderNumber string,
	recipient order.Recipient,
	weight decimal.Decimal,
	dimensions string,
	deliveryMethod string,
	lines []ItemLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		recipient:      recipient,
		weight:         weight,
		dimensions:     dimensions,
		deliveryMethod: deliveryMethod,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

func (c CreateOrderCommand) Weight() decimal.Decimal {
	return c.weight
}

func (c CreateOrderCommand) Dimensions() string {
	return c.dimensions
}

func (c CreateOrderCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// Lines returns a copy of the item lines in the order they will be added.
func (c CreateOrderCommand) Lines() []ItemLine {
	lines := make([]ItemLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return ErrItemLinesAreRequired
	}

	c.lines = make([]ItemLine, len(lines))
	copy(c.lines, lines)
	return nil
}
