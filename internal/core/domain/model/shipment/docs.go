// Package shipment provides the Shipment aggregate and its status log.
//
// The package includes:
//   - Shipment: a consignment from a sender to a recipient between two locations
//   - Status: the shipment lifecycle value (pending, in_transit, delivered, returned)
//   - StatusLogEntry: one append-only record of a status change
//
// Key business rules:
//   - New shipments start as pending
//   - Every status change produces exactly one StatusLogEntry carrying the same
//     status, agent and notes
//   - Status transitions are not restricted; any valid status may follow any other
//   - The first change to delivered stamps the actual delivery time
package shipment
