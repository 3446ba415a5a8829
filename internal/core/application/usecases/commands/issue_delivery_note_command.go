package commands

import (
	"errors"

	"deliverynote/internal/core/domain/model/order"
	"deliverynote/internal/pkg/guard"
)

var (
	ErrIssueDeliveryNoteCommandIsNotConstructed = errors.New(
		"IssueDeliveryNoteCommand must be created via NewIssueDeliveryNoteCommand constructor",
	)
	ErrNoteIDIsRequired = errors.New("note ID is required")
	ErrOrderIsRequired  = errors.New("order is required")
)

// IssueDeliveryNoteCommand asks for a delivery note to be issued and printed
// for an existing order.
type IssueDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID string
	order  *order.DeliveryOrder

	guard guard.ConstructorGuard
}

// NewIssueDeliveryNoteCommand validates that both a note ID and an order are given.
func NewIssueDeliveryNoteCommand(noteID string, o *order.DeliveryOrder) (IssueDeliveryNoteCommand, error) {
	cmd := IssueDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setOrder(o),
	); err != nil {
		return IssueDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrIssueDeliveryNoteCommandIsNotConstructed)
}

func (c IssueDeliveryNoteCommand) NoteID() string {
	return c.noteID
}

func (c IssueDeliveryNoteCommand) Order() *order.DeliveryOrder {
	return c.order
}

func (c *IssueDeliveryNoteCommand) setNoteID(noteID string) error {
	if noteID == "" {
		return ErrNoteIDIsRequired
	}

	c.noteID = noteID
	return nil
}

func (c *IssueDeliveryNoteCommand) setOrder(o *order.DeliveryOrder) error {
	if o == nil {
		return ErrOrderIsRequired
	}
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}
