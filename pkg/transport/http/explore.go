package http

import (
	"net/http"
	"time"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/transport"
)

// The explore collection is plain pass-through CRUD with no ownership
// attached; the routes bypass authentication entirely.

func (a *Adapter) handleListExplore(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.ListExploreItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*api.ExploreItem{}
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (a *Adapter) handleGetExplore(w http.ResponseWriter, r *http.Request) {
	item, err := a.store.GetExploreItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, notFound(err, "trip not found"))
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (a *Adapter) handleCreateExplore(w http.ResponseWriter, r *http.Request) {
	var req api.ExploreRequest
	if err := a.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	item := &api.ExploreItem{
		ID:          api.NewExploreID(),
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := a.store.CreateExploreItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusCreated, item)
}

func (a *Adapter) handleUpdateExplore(w http.ResponseWriter, r *http.Request) {
	item, err := a.store.GetExploreItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, notFound(err, "trip not found for update"))
		return
	}

	var req api.ExploreRequest
	if err := a.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	item.Title = req.Title
	item.Location = req.Location
	item.Description = req.Description
	item.ImageURL = req.ImageURL
	item.Tags = req.Tags

	if err := a.store.UpdateExploreItem(r.Context(), item); err != nil {
		writeError(w, notFound(err, "trip not found for update"))
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (a *Adapter) handleDeleteExplore(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteExploreItem(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, notFound(err, "trip not found for deletion"))
		return
	}
	transport.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "trip deleted successfully"})
}
