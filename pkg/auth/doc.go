// Package auth provides authentication and authorization for the
// wanderlist backend.
//
// Authentication uses a chain-of-responsibility pattern with three-outcome
// voting: each authenticator returns Yes (principal resolved), No
// (credentials invalid), or Abstain (can't handle the credential type).
// A request for which every authenticator abstains is rejected.
//
// Auth is implemented as HTTP middleware, keeping it decoupled from the
// resource handlers. The middleware injects the resolved principal claims
// into the request context; handlers retrieve them with
// PrincipalFromContext.
//
// Authorization is a single ownership rule: Authorize compares the
// principal's ID against a resource's recorded owner.
package auth
