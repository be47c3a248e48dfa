// Package kernel provides the identifier value objects shared by the ledger's
// domain model.
//
// The package includes:
//   - ID: a caller supplied business identifier (customer, location, agent,
//     driver, shipment and package ids). Always a positive integer.
//   - UUID: a generated surrogate identifier for assignment rows and audit
//     log entries, which have no natural key.
//
// Both are immutable values whose zero value fails Validate.
package kernel
