// Package postgres provides a PostgreSQL implementation of storage.Store.
// It uses pgx/v5 for connection pooling and relies on unique indexes on
// username and email as the authoritative guard against duplicate
// registrations under concurrency.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/storage"
)

// Store is a PostgreSQL-backed storage.Store.
type Store struct {
	pool *pgxpool.Pool
}

// Ensure Store implements storage.Store at compile time.
var _ storage.Store = (*Store)(nil)

// New creates a new PostgreSQL store with the given configuration.
// If MigrateOnStart is true, schema migrations are applied automatically.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg.defaults()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connectivity.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{pool: pool}

	if cfg.MigrateOnStart {
		if err := s.migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	return s, nil
}

// CreateUser inserts a new user. The unique indexes on username and email
// turn concurrent duplicate registrations into ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *api.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, surname, given_name, dob, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Surname, u.GivenName, u.DOB, u.Username, u.Email, u.PasswordHash, u.CreatedAt)

	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*api.User, error) {
	return s.getUser(ctx, "id = $1", id)
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*api.User, error) {
	return s.getUser(ctx, "lower(email) = lower($1)", email)
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (*api.User, error) {
	var u api.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, surname, given_name, dob, username, email, password_hash, created_at
		FROM users WHERE `+where,
		arg,
	).Scan(&u.ID, &u.Surname, &u.GivenName, &u.DOB, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// UserExists reports whether a username or email is already taken.
func (s *Store) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM users
			WHERE lower(username) = lower($1) OR lower(email) = lower($2)
		)
	`, username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}
	return exists, nil
}

// CreateDestination inserts a new destination.
func (s *Store) CreateDestination(ctx context.Context, d *api.Destination) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO destinations (id, owner_id, name, location, description, image_url, public, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, d.ID, d.Owner, d.Name, d.Location, d.Description, d.ImageURL, d.Public, d.CreatedAt)

	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("inserting destination: %w", err)
	}
	return nil
}

const destinationColumns = `
	d.id, d.owner_id, COALESCE(u.username, ''), d.name, d.location,
	d.description, d.image_url, d.public, d.created_at`

// GetDestination retrieves a destination by ID with OwnerUsername resolved.
func (s *Store) GetDestination(ctx context.Context, id string) (*api.Destination, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations d
		LEFT JOIN users u ON u.id = d.owner_id
		WHERE d.id = $1
	`, id)

	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying destination: %w", err)
	}
	return d, nil
}

// ListDestinationsByOwner returns the given user's destinations, oldest first.
func (s *Store) ListDestinationsByOwner(ctx context.Context, ownerID string) ([]*api.Destination, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations d
		LEFT JOIN users u ON u.id = d.owner_id
		WHERE d.owner_id = $1
		ORDER BY d.created_at, d.id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	return collectDestinations(rows)
}

// ListDestinations returns destinations across all owners, oldest first.
func (s *Store) ListDestinations(ctx context.Context, publicOnly bool) ([]*api.Destination, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations d
		LEFT JOIN users u ON u.id = d.owner_id
		WHERE NOT $1::boolean OR d.public
		ORDER BY d.created_at, d.id
	`, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	return collectDestinations(rows)
}

// UpdateDestination replaces the stored record. The owner column is
// written as-is; callers never change it.
func (s *Store) UpdateDestination(ctx context.Context, d *api.Destination) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE destinations
		SET name = $2, location = $3, description = $4, image_url = $5, public = $6
		WHERE id = $1
	`, d.ID, d.Name, d.Location, d.Description, d.ImageURL, d.Public)
	if err != nil {
		return fmt.Errorf("updating destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteDestination removes a destination by ID.
func (s *Store) DeleteDestination(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CreateExploreItem inserts a new explore item.
func (s *Store) CreateExploreItem(ctx context.Context, e *api.ExploreItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO explore_items (id, title, location, description, image_url, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.Title, e.Location, e.Description, e.ImageURL, e.Tags, e.CreatedAt)

	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("inserting explore item: %w", err)
	}
	return nil
}

// GetExploreItem retrieves an explore item by ID.
func (s *Store) GetExploreItem(ctx context.Context, id string) (*api.ExploreItem, error) {
	var e api.ExploreItem
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, location, description, image_url, tags, created_at
		FROM explore_items WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.Location, &e.Description, &e.ImageURL, &e.Tags, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying explore item: %w", err)
	}
	return &e, nil
}

// ListExploreItems returns all explore items, oldest first.
func (s *Store) ListExploreItems(ctx context.Context) ([]*api.ExploreItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, location, description, image_url, tags, created_at
		FROM explore_items
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying explore items: %w", err)
	}
	defer rows.Close()

	var out []*api.ExploreItem
	for rows.Next() {
		var e api.ExploreItem
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Description, &e.ImageURL, &e.Tags, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning explore item: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// UpdateExploreItem replaces the stored record.
func (s *Store) UpdateExploreItem(ctx context.Context, e *api.ExploreItem) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE explore_items
		SET title = $2, location = $3, description = $4, image_url = $5, tags = $6
		WHERE id = $1
	`, e.ID, e.Title, e.Location, e.Description, e.ImageURL, e.Tags)
	if err != nil {
		return fmt.Errorf("updating explore item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteExploreItem removes an explore item by ID.
func (s *Store) DeleteExploreItem(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM explore_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting explore item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (*api.Destination, error) {
	var d api.Destination
	err := row.Scan(
		&d.ID, &d.Owner, &d.OwnerUsername, &d.Name, &d.Location,
		&d.Description, &d.ImageURL, &d.Public, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDestinations(rows pgx.Rows) ([]*api.Destination, error) {
	var out []*api.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// isDuplicateKey checks if the error is a PostgreSQL unique violation (23505).
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
