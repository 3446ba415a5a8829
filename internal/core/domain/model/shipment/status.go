package shipment

// Status is the tracked state of a shipment.
//
// The named states below are the ones the workflow assigns, in this order:
//
//	Order Placed ──> In Transit ──> Out for Delivery ──> Delivered
//
// Status is deliberately open: any other string is a valid Status and no
// transition is checked, so carriers can report states this module does not
// name. Use IsKnown to tell the named states apart from free-form ones.
type Status string

const (
	// OrderPlaced is the initial status of every tracked shipment.
	OrderPlaced Status = "Order Placed"

	// InTransit means the parcel left the warehouse.
	InTransit Status = "In Transit"

	// OutForDelivery means the parcel is with the last-mile courier.
	OutForDelivery Status = "Out for Delivery"

	// Delivered means the recipient has the parcel.
	Delivered Status = "Delivered"
)

// DefaultLocation is where every tracked shipment starts.
const DefaultLocation = "Warehouse"

// KnownStatuses returns the named states in workflow order.
func KnownStatuses() []Status {
	return []Status{OrderPlaced, InTransit, OutForDelivery, Delivered}
}

// IsKnown reports whether s is one of the named states.
func (s Status) IsKnown() bool {
	for _, known := range KnownStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
