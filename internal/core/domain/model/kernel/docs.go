// Package kernel provides the value objects shared by the delivery order model.
//
// The package includes:
//   - UUID: aggregate identity for orders, backed by github.com/google/uuid
//   - Money: exact currency amounts backed by github.com/shopspring/decimal
//   - Clock: an injectable time source with system and fixed implementations
//
// All value objects are immutable and safe to copy.
package kernel
