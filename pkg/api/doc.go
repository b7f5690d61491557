// Package api defines the wire-level types of the wanderlist backend:
// identity and resource records, request/response payloads, the error
// taxonomy, and ID generation.
//
// Types in this package are shared between the account service, the
// storage adapters, and the HTTP transport. They carry JSON tags matching
// the public API surface; fields that must never leave the process (such
// as password hashes) are tagged "-".
package api
