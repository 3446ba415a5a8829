package note

import (
	"errors"
	"os"

	"deliverynote/internal/core/domain/model/kernel"
	"deliverynote/internal/core/domain/model/order"
	"deliverynote/internal/pkg/errs"
)

// DateLayout renders dates as "Month DD, YYYY", e.g. "March 10, 2025".
const DateLayout = "January 02, 2006"

var (
	ErrNoteIDIsRequired = errs.NewValueIsRequiredError("note ID")
	ErrOrderIsRequired  = errs.NewValueIsRequiredError("order")
)

// DeliveryNote is the printable paperwork for a delivery order. It reads the
// order when rendered and never changes it.
//
// The note date is stamped once, at construction, and does not follow later
// clock changes. It records when the paperwork was issued, not where the
// shipment is; see package shipment for tracking.
type DeliveryNote struct {
	noteID       string
	order        *order.DeliveryOrder
	deliveryDate string
}

// NewDeliveryNote issues a note for o, stamped with clock.Now().
// A nil clock falls back to the system clock.
//
// Example:
//
//	n, err := note.NewDeliveryNote("DN-2025-001", o, kernel.SystemClock{})
//	if err != nil {
//	    return err
//	}
//	if err := n.Generate(os.Stdout); err != nil {
//	    return err
//	}
func NewDeliveryNote(noteID string, o *order.DeliveryOrder, clock kernel.Clock) (*DeliveryNote, error) {
	var errNoteID, errOrder error
	if noteID == "" {
		errNoteID = ErrNoteIDIsRequired
	}
	if o == nil {
		errOrder = ErrOrderIsRequired
	} else if err := o.Validate(); err != nil {
		errOrder = err
	}
	if err := errors.Join(errNoteID, errOrder); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = kernel.SystemClock{}
	}

	return &DeliveryNote{
		noteID:       noteID,
		order:        o,
		deliveryDate: clock.Now().Format(DateLayout),
	}, nil
}

// NoteID returns the reference number printed on the note.
func (n *DeliveryNote) NoteID() string {
	return n.noteID
}

// DeliveryDate returns the issue date formatted with DateLayout.
func (n *DeliveryNote) DeliveryDate() string {
	return n.deliveryDate
}

// Order returns the order the note describes.
func (n *DeliveryNote) Order() *order.DeliveryOrder {
	return n.order
}

// GenerateNote prints the note on standard output.
func (n *DeliveryNote) GenerateNote() error {
	return n.Generate(os.Stdout)
}
