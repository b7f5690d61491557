package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/auth/token"
	"github.com/wanderlist-dev/wanderlist/pkg/observability"
	"github.com/wanderlist-dev/wanderlist/pkg/storage"
)

// Service registers identities and authenticates credentials.
type Service struct {
	users  storage.UserStore
	tokens *token.Service
}

// NewService creates an account service backed by the given user store
// and token service.
func NewService(users storage.UserStore, tokens *token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register validates the request, stores a new identity with a hashed
// password, and returns a fresh session token plus the claims it encodes.
//
// The uniqueness pre-check gives a friendly conflict error, but the
// store's own unique enforcement is what actually prevents duplicates
// when registrations race.
func (s *Service) Register(ctx context.Context, req *api.RegisterRequest) (*api.AuthResponse, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, api.NewValidationError(missing...)
	}

	taken, err := s.users.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking uniqueness: %w", err)
	}
	if taken {
		return nil, api.NewDuplicateIdentityError()
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &api.User{
		ID:           api.NewUserID(),
		Surname:      req.Surname,
		GivenName:    req.GivenName,
		DOB:          req.DOB,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, api.NewDuplicateIdentityError()
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user registered", "id", user.ID, "username", user.Username)
	observability.RegistrationsTotal.Inc()

	return s.issue(user)
}

// Login authenticates an email/password pair. Unknown email and wrong
// password both produce the identical invalid-credentials error.
func (s *Service) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, api.NewValidationError(missing...)
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, api.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !ComparePassword(user.PasswordHash, req.Password) {
		return nil, api.NewInvalidCredentialsError()
	}

	slog.Info("user logged in", "id", user.ID)

	return s.issue(user)
}

// issue builds claims from the persisted identity and mints a token.
func (s *Service) issue(user *api.User) (*api.AuthResponse, error) {
	claims := api.NewClaims(user)
	tok, err := s.tokens.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &api.AuthResponse{Token: tok, User: claims}, nil
}
