package http

import (
	"net/http"
	"time"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/auth"
	"github.com/wanderlist-dev/wanderlist/pkg/transport"
)

// handleListPublicDestinations lists destinations marked public. No
// authentication required; used by the explore and home pages.
func (a *Adapter) handleListPublicDestinations(w http.ResponseWriter, r *http.Request) {
	a.listDestinations(w, r, true)
}

// handleListAllDestinations lists every destination, public or not.
func (a *Adapter) handleListAllDestinations(w http.ResponseWriter, r *http.Request) {
	a.listDestinations(w, r, false)
}

func (a *Adapter) listDestinations(w http.ResponseWriter, r *http.Request, publicOnly bool) {
	ds, err := a.store.ListDestinations(r.Context(), publicOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	if ds == nil {
		ds = []*api.Destination{}
	}
	transport.WriteJSON(w, http.StatusOK, ds)
}

// handleListOwnDestinations lists the authenticated caller's destinations.
func (a *Adapter) handleListOwnDestinations(w http.ResponseWriter, r *http.Request) {
	claims := auth.PrincipalFromContext(r.Context())
	if claims == nil {
		writeError(w, api.NewUnauthenticatedError())
		return
	}

	ds, err := a.store.ListDestinationsByOwner(r.Context(), claims.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if ds == nil {
		ds = []*api.Destination{}
	}
	transport.WriteJSON(w, http.StatusOK, ds)
}

// handleGetDestination returns a single destination. Any authenticated
// caller may view it, public or not.
func (a *Adapter) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	d, err := a.store.GetDestination(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, notFound(err, "trip not found"))
		return
	}

	transport.WriteJSON(w, http.StatusOK, d)
}

// handleCreateDestination creates a destination owned by the caller. The
// owner always comes from the verified principal, never from the body.
func (a *Adapter) handleCreateDestination(w http.ResponseWriter, r *http.Request) {
	claims := auth.PrincipalFromContext(r.Context())
	if claims == nil {
		writeError(w, api.NewUnauthenticatedError())
		return
	}

	var req api.DestinationRequest
	if err := a.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	d := &api.Destination{
		ID:          api.NewDestinationID(),
		Owner:       claims.ID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Public:      req.Public,
		CreatedAt:   time.Now().UTC(),
	}

	if err := a.store.CreateDestination(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusCreated, d)
}

// handleUpdateDestination applies a partial update. Existence is checked
// before ownership: absent resources yield 404, foreign ones 403.
func (a *Adapter) handleUpdateDestination(w http.ResponseWriter, r *http.Request) {
	claims := auth.PrincipalFromContext(r.Context())
	if claims == nil {
		writeError(w, api.NewUnauthenticatedError())
		return
	}

	d, err := a.store.GetDestination(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, notFound(err, "destination not found"))
		return
	}

	if err := auth.Authorize(claims.ID, d.Owner); err != nil {
		writeError(w, api.NewAccessDeniedError("access denied"))
		return
	}

	var update api.DestinationUpdate
	if err := a.decodeBody(w, r, &update); err != nil {
		writeError(w, err)
		return
	}

	update.Apply(d)

	if err := a.store.UpdateDestination(r.Context(), d); err != nil {
		writeError(w, notFound(err, "destination not found"))
		return
	}

	transport.WriteJSON(w, http.StatusOK, d)
}

// handleDeleteDestination deletes an owned destination, with the same
// 404-before-403 ordering as update.
func (a *Adapter) handleDeleteDestination(w http.ResponseWriter, r *http.Request) {
	claims := auth.PrincipalFromContext(r.Context())
	if claims == nil {
		writeError(w, api.NewUnauthenticatedError())
		return
	}

	d, err := a.store.GetDestination(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, notFound(err, "destination not found"))
		return
	}

	if err := auth.Authorize(claims.ID, d.Owner); err != nil {
		writeError(w, api.NewAccessDeniedError("not allowed to delete this destination"))
		return
	}

	if err := a.store.DeleteDestination(r.Context(), d.ID); err != nil {
		writeError(w, notFound(err, "destination not found"))
		return
	}

	transport.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "deleted successfully"})
}
