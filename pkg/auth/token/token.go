// Package token provides the session token service: HS256-signed JWTs
// carrying a snapshot of the user's claims, plus the bearer-token
// authenticator used by the auth middleware.
//
// Tokens are self-contained and stateless; nothing is persisted server
// side. The trade-off is that claims go stale until the token expires
// and a fresh one is issued, which is acceptable because claims rarely
// change and the TTL is short.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
	"github.com/wanderlist-dev/wanderlist/pkg/auth"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = time.Hour

const issuer = "wanderlist"

// Verification failures. Both map to a 401 at the request boundary but
// stay distinguishable for logs and tests.
var (
	// ErrInvalidToken is returned when the signature does not match or
	// the token is malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the token's expiration instant
	// has passed.
	ErrExpiredToken = errors.New("token expired")
)

// Service issues and verifies session tokens against a single
// process-wide signing secret, injected at construction and immutable
// afterwards.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// sessionClaims is the JWT payload: the public user snapshot plus the
// registered time claims.
type sessionClaims struct {
	ID        string `json:"id"`
	Surname   string `json:"surname"`
	GivenName string `json:"givenName"`
	DOB       string `json:"dob"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	jwtlib.RegisteredClaims
}

// NewService creates a token service. A missing secret is a fatal
// configuration error, not a per-request condition. A zero ttl falls
// back to DefaultTTL.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue serializes the claims with issued-at and expiration instants and
// signs the result.
func (s *Service) Issue(claims *api.Claims) (string, error) {
	now := time.Now()

	sc := sessionClaims{
		ID:        claims.ID,
		Surname:   claims.Surname,
		GivenName: claims.GivenName,
		DOB:       claims.DOB,
		Username:  claims.Username,
		Email:     claims.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   claims.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, sc)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiration and returns the embedded claims.
// Returns ErrExpiredToken when the expiration instant has passed and
// ErrInvalidToken for every other failure.
func (s *Service) Verify(tokenStr string) (*api.Claims, error) {
	tok, err := jwtlib.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{"HS256"}), jwtlib.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %s", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	sc, ok := tok.Claims.(*sessionClaims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &api.Claims{
		ID:        sc.ID,
		Surname:   sc.Surname,
		GivenName: sc.GivenName,
		DOB:       sc.DOB,
		Username:  sc.Username,
		Email:     sc.Email,
	}, nil
}

// Authenticator validates bearer tokens issued by a Service. It abstains
// when the request carries no bearer credential, letting other
// authenticators (if any) vote.
type Authenticator struct {
	svc *Service
}

// NewAuthenticator wraps a token service as an auth.Authenticator.
func NewAuthenticator(svc *Service) *Authenticator {
	return &Authenticator{svc: svc}
}

// Authenticate extracts a bearer token from the Authorization header and
// verifies it.
//
// Decision outcomes:
//   - Abstain: no Authorization header or not a Bearer scheme
//   - No: bearer token present but invalid or expired
//   - Yes: valid token with the embedded claims as principal
func (a *Authenticator) Authenticate(_ context.Context, r *http.Request) auth.Result {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Result{Decision: auth.Abstain}
	}

	// Must be Bearer token.
	if !strings.HasPrefix(header, "Bearer ") {
		return auth.Result{Decision: auth.Abstain}
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == "" {
		return auth.Result{
			Decision: auth.No,
			Err:      fmt.Errorf("empty bearer token"),
		}
	}

	claims, err := a.svc.Verify(tokenStr)
	if err != nil {
		return auth.Result{Decision: auth.No, Err: err}
	}

	return auth.Result{Decision: auth.Yes, Principal: claims}
}
