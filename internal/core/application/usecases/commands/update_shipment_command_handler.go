package commands

import (
	"context"
	"log/slog"
	"time"
)

// UpdateShipmentCommandHandler applies status and location updates to a
// tracked shipment. Any status is accepted; the workflow order is not enforced.
type UpdateShipmentCommandHandler struct {
	logger *slog.Logger
}

func NewUpdateShipmentCommandHandler(logger *slog.Logger) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		logger: logger.With("component", "update_shipment_handler"),
	}
}

// Handle updates the status first, then the location, each printing its
// confirmation, and returns the delivery estimate after the update. Fields
// the command does not carry are neither changed nor confirmed.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	tracker := cmd.Tracker()

	if status, ok := cmd.Status(); ok {
		if !status.IsKnown() {
			h.logger.WarnContext(ctx, "Unrecognised shipment status",
				"order_number", tracker.OrderNumber(), "status", status.String())
		}
		if err := tracker.UpdateStatus(status); err != nil {
			return time.Time{}, err
		}
	}

	if location, ok := cmd.Location(); ok {
		if err := tracker.UpdateLocation(location); err != nil {
			return time.Time{}, err
		}
	}

	h.logger.DebugContext(ctx, "Shipment updated",
		"order_number", tracker.OrderNumber(),
		"status", tracker.CurrentStatus().String(),
		"location", tracker.CurrentLocation(),
	)

	return tracker.EstimateDeliveryTime(), nil
}
