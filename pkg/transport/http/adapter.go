// Package http exposes the wanderlist REST surface over net/http. The
// adapter owns the route table and the thin handlers that translate HTTP
// verbs into account-service and storage calls; authentication and
// ownership decisions live in pkg/auth.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wanderlist-dev/wanderlist/pkg/account"
	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/storage"
	"github.com/wanderlist-dev/wanderlist/pkg/transport"
)

// Config holds adapter-level settings.
type Config struct {
	// MaxBodySize caps request body size in bytes (default: 1 MB).
	MaxBodySize int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{MaxBodySize: 1 << 20}
}

// Adapter routes HTTP requests to the account service and the stores.
type Adapter struct {
	mux      *http.ServeMux
	accounts *account.Service
	store    storage.Store
	config   Config
}

// NewAdapter creates the adapter and registers all routes.
func NewAdapter(accounts *account.Service, store storage.Store, cfg Config) *Adapter {
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultConfig().MaxBodySize
	}

	a := &Adapter{
		mux:      http.NewServeMux(),
		accounts: accounts,
		store:    store,
		config:   cfg,
	}

	a.mux.HandleFunc("POST /api/auth/register", a.handleRegister)
	a.mux.HandleFunc("POST /api/auth/login", a.handleLogin)
	a.mux.HandleFunc("GET /api/auth/verify", a.handleVerify)

	a.mux.HandleFunc("GET /api/destinations/public", a.handleListPublicDestinations)
	a.mux.HandleFunc("GET /api/destinations/public-all", a.handleListAllDestinations)
	a.mux.HandleFunc("GET /api/destinations", a.handleListOwnDestinations)
	a.mux.HandleFunc("GET /api/destinations/{id}", a.handleGetDestination)
	a.mux.HandleFunc("POST /api/destinations", a.handleCreateDestination)
	a.mux.HandleFunc("PUT /api/destinations/{id}", a.handleUpdateDestination)
	a.mux.HandleFunc("DELETE /api/destinations/{id}", a.handleDeleteDestination)

	a.mux.HandleFunc("GET /api/explore", a.handleListExplore)
	a.mux.HandleFunc("GET /api/explore/{id}", a.handleGetExplore)
	a.mux.HandleFunc("POST /api/explore", a.handleCreateExplore)
	a.mux.HandleFunc("PUT /api/explore/{id}", a.handleUpdateExplore)
	a.mux.HandleFunc("DELETE /api/explore/{id}", a.handleDeleteExplore)

	return a
}

// Handler returns the adapter's route table.
func (a *Adapter) Handler() http.Handler {
	return a.mux
}

// decodeBody decodes a JSON request body into dst, enforcing the body
// size cap.
func (a *Adapter) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &api.APIError{
			Type:    api.ErrorTypeValidation,
			Message: fmt.Sprintf("invalid request body: %v", err),
		}
	}
	return nil
}

// notFound maps storage.ErrNotFound onto a 404 APIError and leaves every
// other error untouched.
func notFound(err error, message string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return api.NewNotFoundError(message)
	}
	return err
}

// writeError is a small alias to keep handler bodies short.
func writeError(w http.ResponseWriter, err error) {
	transport.WriteAPIError(w, err)
}
