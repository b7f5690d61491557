// Package transport provides HTTP-level plumbing shared by the handlers
// in transport/http: middleware (recovery, request IDs, request logging),
// the APIError-to-status mapping, and JSON response helpers.
package transport
