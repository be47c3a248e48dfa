// Package directory holds the reference data shipments point at: customers,
// locations and agents. These are plain records; the ledger never changes them
// after registration.
package directory
