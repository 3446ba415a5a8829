// Package note renders delivery notes: the printable receipt a recipient
// presents when collecting a delivery order.
//
// A DeliveryNote is stamped with its issue date when created and renders the
// recipient, delivery information, a fixed-width item table and the AED totals
// of the order it refers to.
package note
