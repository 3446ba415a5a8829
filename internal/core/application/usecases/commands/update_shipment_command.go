package commands

import (
	"errors"

	"deliverynote/internal/core/domain/model/shipment"
	"deliverynote/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrTrackerIsRequired = errors.New("delivery status is required")
	ErrNothingToUpdate   = errors.New("status or location is required")
)

// UpdateShipmentCommand moves a tracked shipment to a new status, a new
// location, or both. A nil status or location leaves that field as is;
// a non-nil one is applied even when it points to an empty string.
//
// Example:
//
//	status, location := shipment.InTransit, "Local Distribution Center"
//	cmd, err := NewUpdateShipmentCommand(tracker, &status, &location)
//	if err != nil {
//	    return err
//	}
//	eta, err := handler.Handle(ctx, cmd)
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	tracker  *shipment.DeliveryStatus
	status   *shipment.Status
	location *string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand requires a tracker and at least one of status and location.
func NewUpdateShipmentCommand(
	tracker *shipment.DeliveryStatus,
	status *shipment.Status,
	location *string,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		cmd.status = &s
	}
	if location != nil {
		l := *location
		cmd.location = &l
	}

	var errEmpty error
	if status == nil && location == nil {
		errEmpty = ErrNothingToUpdate
	}

	if err := errors.Join(
		cmd.setTracker(tracker),
		errEmpty,
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) Tracker() *shipment.DeliveryStatus {
	return c.tracker
}

// Status returns the new status; ok is false when the current one is kept.
func (c UpdateShipmentCommand) Status() (status shipment.Status, ok bool) {
	if c.status == nil {
		return "", false
	}
	return *c.status, true
}

// Location returns the new location; ok is false when the current one is kept.
func (c UpdateShipmentCommand) Location() (location string, ok bool) {
	if c.location == nil {
		return "", false
	}
	return *c.location, true
}

func (c *UpdateShipmentCommand) setTracker(tracker *shipment.DeliveryStatus) error {
	if tracker == nil {
		return ErrTrackerIsRequired
	}

	c.tracker = tracker
	return nil
}
