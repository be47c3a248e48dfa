// Package queries contains the read-only ledger reports. Handlers run raw SQL
// through GORM and return flat response rows; none of them take locks.
// Transient failures and timeouts are retried under the handler's policy.
package queries
