package note

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyLabel prefixes every amount in the totals block.
const CurrencyLabel = "AED"

const (
	courtesyMessage = "Thank you for using our delivery service! " +
		"Please print your delivery receipt and present it upon receiving your items."

	itemHeaderFormat = "%-10s %-20s %-10s %-15s %-15s\n"
	itemRowFormat    = "%-10s %-20s %-10d %-15s %-15s\n"
)

// Generate writes the note to w: heading, recipient, delivery information,
// one row per item in the order they were added, then the totals.
// Column widths are fixed; values longer than a column push the rest of the row right.
func (n *DeliveryNote) Generate(w io.Writer) error {
	bw := bufio.NewWriter(w)
	o := n.order
	recipient := o.Recipient()

	fmt.Fprintln(bw, "Delivery Note")
	fmt.Fprintln(bw, courtesyMessage)

	fmt.Fprintln(bw, "\nRecipient Details:")
	fmt.Fprintln(bw, "Name:", recipient.Name())
	fmt.Fprintln(bw, "Contact:", recipient.Contact())
	fmt.Fprintln(bw, "Delivery Address:", recipient.Address())

	fmt.Fprintln(bw, "\nDelivery Information:")
	fmt.Fprintln(bw, "Order Number:", o.OrderNumber())
	fmt.Fprintln(bw, "Reference Number:", n.noteID)
	fmt.Fprintln(bw, "Delivery Date:", n.deliveryDate)
	fmt.Fprintln(bw, "Delivery Method:", o.DeliveryMethod())
	fmt.Fprintln(bw, "Package Dimensions:", o.Dimensions())
	fmt.Fprintln(bw, "Total Weight:", formatWeight(o.Weight())+" kg")

	fmt.Fprintln(bw, "\nSummary of Items Delivered:")
	fmt.Fprintf(bw, itemHeaderFormat, "Item Code", "Description", "Quantity", "Unit Price", "Total Price")
	for _, item := range o.Items() {
		fmt.Fprintf(bw, itemRowFormat,
			item.Code(),
			item.Description(),
			item.Quantity(),
			item.UnitPrice().Fixed2(),
			item.TotalPrice().Fixed2(),
		)
	}

	fmt.Fprintln(bw, "\nSubtotal:", CurrencyLabel, o.Subtotal().Plain())
	fmt.Fprintln(bw, "Taxes and Fees:", CurrencyLabel, o.Taxes().Plain())
	fmt.Fprintln(bw, "Total Charges:", CurrencyLabel, o.Total().Plain())

	// bufio keeps the first write error and reports it here.
	return bw.Flush()
}

// formatWeight prints whole weights as given: 7 stays "7" while 7.0 keeps
// one fractional digit. Other trailing zeros are dropped ("2.50" -> "2.5").
func formatWeight(weight decimal.Decimal) string {
	s := weight.String()
	if weight.Exponent() < 0 && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
