// Package storage defines the persistence contracts of the wanderlist
// backend and the sentinel errors shared by all adapter implementations.
//
// Two adapters exist: memory (mutex-guarded maps, for tests and
// lightweight deployments) and postgres (pgx connection pool with
// embedded schema migrations). Both implement the Store interface.
//
// Uniqueness of usernames and emails is enforced authoritatively by the
// adapter (unique indexes in postgres, a write-locked check in memory);
// the account service's pre-check is a convenience for friendlier errors,
// not the guarantee.
package storage
