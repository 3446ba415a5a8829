package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/note"
)

// IssueDeliveryNoteCommandHandler stamps a delivery note with the handler's
// clock and prints it to the handler's output.
type IssueDeliveryNoteCommandHandler struct {
	clock  kernel.Clock
	out    io.Writer
	logger *slog.Logger
}

// NewIssueDeliveryNoteCommandHandler creates a handler printing notes to out.
func NewIssueDeliveryNoteCommandHandler(
	clock kernel.Clock,
	out io.Writer,
	logger *slog.Logger,
) IssueDeliveryNoteCommandHandler {
	return IssueDeliveryNoteCommandHandler{
		clock:  clock,
		out:    out,
		logger: logger.With("component", "issue_delivery_note_handler"),
	}
}

// Handle issues the note, prints it and returns it. The note is returned only
// if it was printed completely.
func (h IssueDeliveryNoteCommandHandler) Handle(
	ctx context.Context,
	cmd IssueDeliveryNoteCommand,
) (*note.DeliveryNote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n, err := note.NewDeliveryNote(cmd.NoteID(), cmd.Order(), h.clock)
	if err != nil {
		return nil, err
	}

	if err = n.Generate(h.out); err != nil {
		h.logger.ErrorContext(ctx, "Delivery note could not be printed", "note_id", n.NoteID(), "error", err)
		return nil, fmt.Errorf("failed to print delivery note %s: %w", n.NoteID(), err)
	}

	h.logger.DebugContext(ctx, "Delivery note issued",
		"note_id", n.NoteID(),
		"order_number", cmd.Order().OrderNumber(),
		"date", n.DeliveryDate(),
	)

	return n, nil
}
