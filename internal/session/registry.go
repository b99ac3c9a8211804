package session

import (
	"sync"

	"charm-shop/internal/models"

	"github.com/google/uuid"
)

// Registry maps opaque session tokens to logged-in usernames. It lives in
// process memory only: a restart drops every session, and there is no
// expiry beyond an explicit Destroy. Favorites ride on the session record,
// so they reset on every new login.
//
// The registry is constructed in main and injected into the handlers; it
// must be safe for concurrent use across request goroutines.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*record
}

type record struct {
	username  string
	favorites []models.Product
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*record)}
}

// Create opens a new session for username and returns its token. The
// caller pairs this with setting the session cookie. A username may hold
// several live tokens at once.
func (r *Registry) Create(username string) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.sessions[token] = &record{username: username}
	r.mu.Unlock()
	return token
}

// Resolve returns the username bound to token. An unknown or empty token
// resolves to the anonymous identity (ok=false), never to an error.
func (r *Registry) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	r.mu.RLock()
	rec, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return "", false
	}
	return rec.username, true
}

// Destroy drops the session. Destroying an unknown token is a no-op.
func (r *Registry) Destroy(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// AddFavorite records a product on the session's favorites list.
// Idempotent: a product already present (by id) is not added twice.
func (r *Registry) AddFavorite(token string, p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[token]
	if !ok {
		return
	}
	for _, f := range rec.favorites {
		if f.ID == p.ID {
			return
		}
	}
	rec.favorites = append(rec.favorites, p)
}

// RemoveFavorite drops the product with the given id from the session's
// favorites, if present.
func (r *Registry) RemoveFavorite(token string, productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[token]
	if !ok {
		return
	}
	kept := rec.favorites[:0]
	for _, f := range rec.favorites {
		if f.ID != productID {
			kept = append(kept, f)
		}
	}
	rec.favorites = kept
}

// Favorites returns the session's favorites in insertion order. Unknown
// tokens get an empty list.
func (r *Registry) Favorites(token string) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.sessions[token]
	if !ok {
		return nil
	}
	out := make([]models.Product, len(rec.favorites))
	copy(out, rec.favorites)
	return out
}
