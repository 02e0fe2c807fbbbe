package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/florawhisper/storefront-gateway/internal/cart"
	"github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
)

// Upstream account roles.
const (
	RoleCustomer = "ROLE_CUSTOMER"
	RoleAdmin    = "ROLE_ADMIN"
	RoleBankUser = "ROLE_BANKUSER"
)

// Identity is what a browsing session resolves to: the upstream bearer
// token plus the account it belongs to.
type Identity struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"roleName"`
}

type store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

type cartEntry struct {
	store    *cart.Store
	lastSeen time.Time
}

// Manager issues session tokens, keeps their identities in Redis, and
// holds the per-session cart stores in process.
type Manager struct {
	store   store
	ttl     time.Duration
	metrics *metrics.CartMetrics
	now     func() time.Time

	mu    sync.Mutex
	carts map[string]*cartEntry
}

func NewManager(store store, ttl time.Duration, cartMetrics *metrics.CartMetrics) *Manager {
	return &Manager{
		store:   store,
		ttl:     ttl,
		metrics: cartMetrics,
		now:     time.Now,
		carts:   make(map[string]*cartEntry),
	}
}

// Create opens a new session for the identity and returns its token.
func (m *Manager) Create(ctx context.Context, identity Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, err, "failed to encode session")
	}

	sessionID := uuid.NewString()
	if err := m.store.Set(ctx, m.store.SessionKey(sessionID), payload, m.ttl); err != nil {
		return "", errors.Wrap(errors.CodeInternal, err, "failed to persist session")
	}
	return sessionID, nil
}

// Resolve looks up the identity behind a session token and slides its
// expiry forward. Unknown or expired tokens resolve to unauthorized.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*Identity, error) {
	raw, err := m.store.Get(ctx, m.store.SessionKey(sessionID))
	if err != nil {
		if err == goredis.Nil {
			m.dropCart(sessionID)
			return nil, errors.New(errors.CodeUnauthorized, "session expired or unknown")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "failed to load session")
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "failed to decode session")
	}

	if err := m.store.Expire(ctx, m.store.SessionKey(sessionID), m.ttl); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "failed to refresh session")
	}
	m.touchCart(sessionID)
	return &identity, nil
}

// Revoke drops a session and its cart. Revoking an unknown session is
// a no-op.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if err := m.store.Del(ctx, m.store.SessionKey(sessionID)); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "failed to delete session")
	}

	m.dropCart(sessionID)
	return nil
}

// Cart returns the session's cart store, creating an empty one on
// first use. Carts live in process only, a gateway restart starts the
// session over with an empty cart.
func (m *Manager) Cart(sessionID string) *cart.Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.carts[sessionID]; ok {
		entry.lastSeen = m.now()
		return entry.store
	}

	c := cart.NewStore()
	if m.metrics != nil {
		id := sessionID
		c.Subscribe(func(sum cart.Summary) {
			m.metrics.SetItems(id, sum.TotalItems)
		})
	}
	m.carts[sessionID] = &cartEntry{store: c, lastSeen: m.now()}
	return c
}

// PruneIdle removes carts untouched for longer than maxIdle along with
// their gauge series. Sessions expire out of Redis on their own; this
// reclaims the in-process state they leave behind. Returns the number
// of carts dropped.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	var stale []string
	for id, entry := range m.carts {
		if entry.lastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		delete(m.carts, id)
	}
	m.mu.Unlock()

	if m.metrics != nil {
		for _, id := range stale {
			m.metrics.DropSession(id)
		}
	}
	return len(stale)
}

func (m *Manager) dropCart(sessionID string) {
	m.mu.Lock()
	_, existed := m.carts[sessionID]
	delete(m.carts, sessionID)
	m.mu.Unlock()

	if existed && m.metrics != nil {
		m.metrics.DropSession(sessionID)
	}
}

func (m *Manager) touchCart(sessionID string) {
	m.mu.Lock()
	if entry, ok := m.carts[sessionID]; ok {
		entry.lastSeen = m.now()
	}
	m.mu.Unlock()
}
