// Package driver provides the Driver entity and driver-to-shipment assignments.
//
// A driver carries at most CapacityLimit undelivered assignments. The limit is
// checked when a new assignment is created, with the driver row locked so two
// concurrent assignments cannot both pass the check.
package driver
