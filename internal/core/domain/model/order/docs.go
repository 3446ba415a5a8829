// Package order provides the delivery order aggregate: the order itself, its
// line items and its recipient.
//
// The package includes:
//   - DeliveryOrder: the aggregate root owning recipient, shipment metadata and items
//   - Item: an order line whose total is quantity * unit price rounded to cents
//   - Recipient: name, contact and address of whoever receives the parcel
//
// Key business rules:
//   - Charges are derived on every read: subtotal is the sum of item totals,
//     taxes are a flat 5% of the subtotal and total is subtotal plus taxes
//   - Items keep insertion order and may repeat
//   - Quantities, unit prices and weights may not be negative
package order
