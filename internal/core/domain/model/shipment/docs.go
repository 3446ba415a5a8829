// Package shipment tracks the status and location of a delivery order after it
// has been placed.
//
// The package includes:
//   - Status: the shipment state, with named states Order Placed, In Transit,
//     Out for Delivery and Delivered
//   - DeliveryStatus: the mutable status/location pair for one order number,
//     which confirms each update on an output stream and gives a fixed
//     two-day delivery estimate
package shipment
