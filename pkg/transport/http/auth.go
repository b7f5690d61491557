package http

import (
	"net/http"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/auth"
	"github.com/wanderlist-dev/wanderlist/pkg/transport"
)

// handleRegister creates a new identity and returns a session token.
func (a *Adapter) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := a.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := a.accounts.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusCreated, resp)
}

// handleLogin authenticates an email/password pair and returns a session
// token.
func (a *Adapter) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := a.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := a.accounts.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, resp)
}

// handleVerify echoes the authenticated principal. The auth middleware
// has already verified the token; this is a pure round-trip.
func (a *Adapter) handleVerify(w http.ResponseWriter, r *http.Request) {
	claims := auth.PrincipalFromContext(r.Context())
	if claims == nil {
		writeError(w, api.NewUnauthenticatedError())
		return
	}

	transport.WriteJSON(w, http.StatusOK, api.VerifyResponse{User: claims})
}
