// Package memory provides an in-memory implementation of storage.Store
// for testing and lightweight deployments. Records are kept in
// mutex-guarded maps and lost when the process restarts.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/storage"
)

// Store is an in-memory storage.Store.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*api.User
	destinations map[string]*api.Destination
	explore      map[string]*api.ExploreItem
	seq          map[string]int // insertion order per record ID
	nextSeq      int
}

// Ensure Store implements storage.Store at compile time.
var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[string]*api.User),
		destinations: make(map[string]*api.Destination),
		explore:      make(map[string]*api.ExploreItem),
		seq:          make(map[string]int),
	}
}

// CreateUser inserts a new user. The username/email uniqueness check and
// the insert happen under one write lock, making the store the actual
// guard against duplicate registrations racing each other.
func (s *Store) CreateUser(_ context.Context, u *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return storage.ErrDuplicate
		}
	}

	cp := *u
	s.users[u.ID] = &cp
	s.seq[u.ID] = s.nextSeq
	s.nextSeq++
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(_ context.Context, id string) (*api.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*api.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

// UserExists reports whether a username or email is already taken.
func (s *Store) UserExists(_ context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// CreateDestination inserts a new destination.
func (s *Store) CreateDestination(_ context.Context, d *api.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.destinations[d.ID]; exists {
		return storage.ErrDuplicate
	}

	cp := *d
	s.destinations[d.ID] = &cp
	s.seq[d.ID] = s.nextSeq
	s.nextSeq++
	return nil
}

// GetDestination retrieves a destination by ID with OwnerUsername resolved.
func (s *Store) GetDestination(_ context.Context, id string) (*api.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *d
	s.resolveOwner(&cp)
	return &cp, nil
}

// ListDestinationsByOwner returns the given user's destinations, oldest first.
func (s *Store) ListDestinationsByOwner(_ context.Context, ownerID string) ([]*api.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*api.Destination
	for _, d := range s.destinations {
		if d.Owner != ownerID {
			continue
		}
		cp := *d
		s.resolveOwner(&cp)
		out = append(out, &cp)
	}
	s.sortByInsertion(out)
	return out, nil
}

// ListDestinations returns destinations across all owners, oldest first.
func (s *Store) ListDestinations(_ context.Context, publicOnly bool) ([]*api.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*api.Destination
	for _, d := range s.destinations {
		if publicOnly && !d.Public {
			continue
		}
		cp := *d
		s.resolveOwner(&cp)
		out = append(out, &cp)
	}
	s.sortByInsertion(out)
	return out, nil
}

// UpdateDestination replaces the stored record.
func (s *Store) UpdateDestination(_ context.Context, d *api.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.destinations[d.ID]; !ok {
		return storage.ErrNotFound
	}
	cp := *d
	cp.OwnerUsername = ""
	s.destinations[d.ID] = &cp
	return nil
}

// DeleteDestination removes a destination by ID.
func (s *Store) DeleteDestination(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.destinations[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.destinations, id)
	delete(s.seq, id)
	return nil
}

// CreateExploreItem inserts a new explore item.
func (s *Store) CreateExploreItem(_ context.Context, e *api.ExploreItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.explore[e.ID]; exists {
		return storage.ErrDuplicate
	}

	cp := *e
	s.explore[e.ID] = &cp
	s.seq[e.ID] = s.nextSeq
	s.nextSeq++
	return nil
}

// GetExploreItem retrieves an explore item by ID.
func (s *Store) GetExploreItem(_ context.Context, id string) (*api.ExploreItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.explore[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

// ListExploreItems returns all explore items, oldest first.
func (s *Store) ListExploreItems(_ context.Context) ([]*api.ExploreItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*api.ExploreItem, 0, len(s.explore))
	for _, e := range s.explore {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

// UpdateExploreItem replaces the stored record.
func (s *Store) UpdateExploreItem(_ context.Context, e *api.ExploreItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.explore[e.ID]; !ok {
		return storage.ErrNotFound
	}
	cp := *e
	s.explore[e.ID] = &cp
	return nil
}

// DeleteExploreItem removes an explore item by ID.
func (s *Store) DeleteExploreItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.explore[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.explore, id)
	delete(s.seq, id)
	return nil
}

// resolveOwner fills OwnerUsername from the owning user, if present.
// Must be called with at least the read lock held.
func (s *Store) resolveOwner(d *api.Destination) {
	if u, ok := s.users[d.Owner]; ok {
		d.OwnerUsername = u.Username
	}
}

// sortByInsertion orders destinations oldest first. Must be called with
// at least the read lock held.
func (s *Store) sortByInsertion(ds []*api.Destination) {
	sort.Slice(ds, func(i, j int) bool {
		return s.seq[ds[i].ID] < s.seq[ds[j].ID]
	})
}
