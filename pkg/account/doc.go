// Package account implements the credential registration and
// verification flow: registering new identities, logging in against
// stored bcrypt hashes, and minting session tokens for both.
//
// The service composes the user store and the token service; it owns no
// state of its own. Login deliberately collapses "unknown email" and
// "wrong password" into one invalid-credentials error so the response
// reveals nothing about which factor failed.
package account
