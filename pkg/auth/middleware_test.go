package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
)

func TestMiddleware_BypassPrefix(t *testing.T) {
	chain := &Chain{}
	mw := Middleware(chain, []string{"/healthz", "/api/explore"})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/api/explore", "/api/explore/exp_123"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("bypass %s: status = %d, want 200", path, rec.Code)
		}
	}
}

func TestMiddleware_BypassPrefixIsSegmentAligned(t *testing.T) {
	chain := &Chain{}
	mw := Middleware(chain, []string{"/api/explore"})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// "/api/exploremore" shares a string prefix but not a path segment.
	req := httptest.NewRequest("GET", "/api/exploremore", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_NoCredentials_Rejects(t *testing.T) {
	chain := &Chain{}
	mw := Middleware(chain, DefaultBypassPrefixes)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/destinations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_InvalidCredentials_Rejects(t *testing.T) {
	chain := &Chain{
		Authenticators: []Authenticator{
			&mockAuthn{result: Result{Decision: No, Err: ErrUnauthenticated}},
		},
	}
	mw := Middleware(chain, nil)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for rejected request")
	}))

	req := httptest.NewRequest("GET", "/api/destinations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_ValidCredentials_InjectsPrincipal(t *testing.T) {
	claims := &api.Claims{ID: "user_1", Username: "alice"}
	chain := &Chain{
		Authenticators: []Authenticator{
			&mockAuthn{result: Result{Decision: Yes, Principal: claims}},
		},
	}
	mw := Middleware(chain, nil)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := PrincipalFromContext(r.Context())
		if got == nil || got.ID != "user_1" {
			t.Errorf("principal = %+v, want user_1", got)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/destinations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMiddleware_EmptyPrincipalID_ServerError(t *testing.T) {
	chain := &Chain{
		Authenticators: []Authenticator{
			&mockAuthn{result: Result{Decision: Yes, Principal: &api.Claims{}}},
		},
	}
	mw := Middleware(chain, nil)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for malformed principal")
	}))

	req := httptest.NewRequest("GET", "/api/destinations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
