package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/florawhisper/storefront-gateway/internal/session"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
)

type stubResolver struct {
	identity *session.Identity
	err      error
	resolved string
}

func (s *stubResolver) Resolve(_ context.Context, sessionID string) (*session.Identity, error) {
	s.resolved = sessionID
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func authProtected(resolver *stubResolver) http.Handler {
	return Auth(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthResolvesBearerToken(t *testing.T) {
	resolver := &stubResolver{identity: &session.Identity{Token: "up-tok", Username: "rose", Role: session.RoleCustomer}}

	var seen *session.Identity
	handler := Auth(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IdentityFromContext(r.Context())
		if got := SessionIDFromContext(r.Context()); got != "sess-9" {
			t.Fatalf("unexpected session id %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer sess-9")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resolver.resolved != "sess-9" {
		t.Fatalf("expected resolver called with sess-9, got %q", resolver.resolved)
	}
	if seen == nil || seen.Username != "rose" {
		t.Fatalf("expected identity in context, got %+v", seen)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	handler := authProtected(&stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthExpiredSession(t *testing.T) {
	handler := authProtected(&stubResolver{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired or unknown")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer gone")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(nil, session.RoleAdmin)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req = req.WithContext(WithSession(req.Context(), "s1", &session.Identity{Role: session.RoleCustomer}))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("customer: expected 403 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req = req.WithContext(WithSession(req.Context(), "s1", &session.Identity{Role: session.RoleAdmin}))
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("admin: expected 200 got %d", resp.Code)
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	handler := RequireRole(nil, session.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
