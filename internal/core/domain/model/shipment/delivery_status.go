package shipment

import (
	"fmt"
	"io"
	"os"
	"time"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/pkg/errs"
)

// EstimatedTransitTime is the fixed offset EstimateDeliveryTime adds to the
// current time. It is a placeholder and ignores status and location.
const EstimatedTransitTime = 2 * 24 * time.Hour

// DeliveryStatus tracks where a shipment is and what state it is in.
// It is keyed by order number only and holds no reference to the order.
//
// Updates overwrite the previous value; no history is kept and no transition
// is rejected, so Delivered -> Order Placed is accepted like any other change.
type DeliveryStatus struct {
	orderNumber     string
	currentStatus   Status
	currentLocation string

	// out receives the confirmation line of every Update call
	out   io.Writer
	clock kernel.Clock
}

// Option overrides part of a DeliveryStatus's initial state.
type Option func(*DeliveryStatus)

// WithStatus starts tracking at status instead of OrderPlaced.
func WithStatus(status Status) Option {
	return func(d *DeliveryStatus) {
		d.currentStatus = status
	}
}

// WithLocation starts tracking at location instead of the Warehouse.
func WithLocation(location string) Option {
	return func(d *DeliveryStatus) {
		d.currentLocation = location
	}
}

// NewDeliveryStatus starts tracking an order at OrderPlaced in the Warehouse
// unless opts say otherwise. Initial values are set silently.
//
// Parameters:
//   - orderNumber: order being tracked (required)
//   - out: destination of update confirmations; nil means os.Stdout
//   - clock: time source for EstimateDeliveryTime; nil means the system clock
//   - opts: WithStatus and WithLocation overrides, applied in order
//
// Example:
//
//	status, err := shipment.NewDeliveryStatus(o.OrderNumber(), os.Stdout, kernel.SystemClock{})
//	if err != nil {
//	    return err
//	}
//	status.UpdateStatus(shipment.InTransit) // prints "Status updated to In Transit"
func NewDeliveryStatus(
	orderNumber string,
	out io.Writer,
	clock kernel.Clock,
	opts ...Option,
) (*DeliveryStatus, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if out == nil {
		out = os.Stdout
	}
	if clock == nil {
		clock = kernel.SystemClock{}
	}

	d := &DeliveryStatus{
		orderNumber:     orderNumber,
		currentStatus:   OrderPlaced,
		currentLocation: DefaultLocation,
		out:             out,
		clock:           clock,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d, nil
}

// OrderNumber returns the tracked order's number.
func (d *DeliveryStatus) OrderNumber() string {
	return d.orderNumber
}

// CurrentStatus returns the latest status.
func (d *DeliveryStatus) CurrentStatus() Status {
	return d.currentStatus
}

// CurrentLocation returns the latest location.
func (d *DeliveryStatus) CurrentLocation() string {
	return d.currentLocation
}

// SetCurrentStatus overwrites the status silently.
func (d *DeliveryStatus) SetCurrentStatus(status Status) {
	d.currentStatus = status
}

// SetCurrentLocation overwrites the location silently.
func (d *DeliveryStatus) SetCurrentLocation(location string) {
	d.currentLocation = location
}

// UpdateStatus overwrites the status and writes "Status updated to <status>".
// The new status is applied even if the confirmation cannot be written.
func (d *DeliveryStatus) UpdateStatus(status Status) error {
	d.SetCurrentStatus(status)
	_, err := fmt.Fprintf(d.out, "Status updated to %s\n", status)
	return err
}

// UpdateLocation overwrites the location and writes "Location updated to <location>".
// The new location is applied even if the confirmation cannot be written.
func (d *DeliveryStatus) UpdateLocation(location string) error {
	d.SetCurrentLocation(location)
	_, err := fmt.Fprintf(d.out, "Location updated to %s\n", location)
	return err
}

// EstimateDeliveryTime returns now + EstimatedTransitTime.
func (d *DeliveryStatus) EstimateDeliveryTime() time.Time {
	return d.clock.Now().Add(EstimatedTransitTime)
}
