// Package parcel provides the package entity, its shipment assignments and
// the movement log written when a package changes shipment.
//
// The Go keyword rules out "package" as a name, so the entity lives here as
// parcel.Package.
//
// Key business rules:
//   - Weight is positive, at most 999999.99 and carries at most two decimals
//   - A package has at most one open assignment (RemovedAt unset) at any time
//   - Moving a package closes its open assignment, opens one for the
//     destination shipment and records a Movement, all in one transaction
package parcel
