package cmd

import (
	"io"
	"log/slog"

	"deliverynote/internal/core/application/usecases/commands"
	"deliverynote/internal/core/application/usecases/queries"
	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/shipment"
)

// CompositionRoot wires the clock, the output stream and the logger into the
// use case handlers. Notes and shipment confirmations are written to out;
// diagnostics go through logger.
type CompositionRoot struct {
	config Config
	clock  kernel.Clock
	out    io.Writer
	logger *slog.Logger
}

func NewCompositionRoot(config Config, clock kernel.Clock, out io.Writer, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		clock:  clock,
		out:    out,
		logger: logger,
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateIssueDeliveryNoteCommandHandler() commands.IssueDeliveryNoteCommandHandler {
	return commands.NewIssueDeliveryNoteCommandHandler(c.clock, c.out, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateGetOrderTotalsQueryHandler() queries.GetOrderTotalsQueryHandler {
	return queries.NewGetOrderTotalsQueryHandler()
}

// TrackShipment starts tracking orderNumber at Order Placed in the Warehouse,
// or wherever opts place it.
func (c *CompositionRoot) TrackShipment(orderNumber string, opts ...shipment.Option) (*shipment.DeliveryStatus, error) {
	return shipment.NewDeliveryStatus(orderNumber, c.out, c.clock, opts...)
}
