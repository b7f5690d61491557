package storage

import (
	"context"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
)

// UserStore persists identity records.
type UserStore interface {
	// CreateUser inserts a new user. Returns ErrDuplicate when the
	// username or email is already taken.
	CreateUser(ctx context.Context, u *api.User) error

	// GetUser retrieves a user by ID. Returns ErrNotFound if absent.
	GetUser(ctx context.Context, id string) (*api.User, error)

	// GetUserByEmail retrieves a user by email. Returns ErrNotFound if absent.
	GetUserByEmail(ctx context.Context, email string) (*api.User, error)

	// UserExists reports whether a user with the given username or email
	// already exists.
	UserExists(ctx context.Context, username, email string) (bool, error)
}

// DestinationStore persists owned destination records. Reads populate
// OwnerUsername from the owning user where the adapter can resolve it.
type DestinationStore interface {
	// CreateDestination inserts a new destination.
	CreateDestination(ctx context.Context, d *api.Destination) error

	// GetDestination retrieves a destination by ID. Returns ErrNotFound
	// if absent.
	GetDestination(ctx context.Context, id string) (*api.Destination, error)

	// ListDestinationsByOwner returns all destinations owned by the given
	// user, oldest first.
	ListDestinationsByOwner(ctx context.Context, ownerID string) ([]*api.Destination, error)

	// ListDestinations returns destinations across all owners, oldest
	// first. With publicOnly set, private records are excluded.
	ListDestinations(ctx context.Context, publicOnly bool) ([]*api.Destination, error)

	// UpdateDestination replaces the stored record with d. Returns
	// ErrNotFound if absent.
	UpdateDestination(ctx context.Context, d *api.Destination) error

	// DeleteDestination removes a destination by ID. Returns ErrNotFound
	// if absent.
	DeleteDestination(ctx context.Context, id string) error
}

// ExploreStore persists curated explore items.
type ExploreStore interface {
	CreateExploreItem(ctx context.Context, e *api.ExploreItem) error
	GetExploreItem(ctx context.Context, id string) (*api.ExploreItem, error)
	ListExploreItems(ctx context.Context) ([]*api.ExploreItem, error)
	UpdateExploreItem(ctx context.Context, e *api.ExploreItem) error
	DeleteExploreItem(ctx context.Context, id string) error
}

// Store is the full persistence surface a backend deployment needs.
type Store interface {
	UserStore
	DestinationStore
	ExploreStore
}
