package keyexchange

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-stego-channel/internal/crypto"
)

// Registry keeps server-side sessions until the peer answers and the
// derived secrets until they are taken. Completed session ids are
// remembered until their TTL runs out so a repeated Complete is reported as
// [ErrSessionAlreadyComplete] even after the secret was taken. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	pending   map[string]pendingEntry
	secrets   map[string]secretEntry
	completed map[string]time.Time
}

type pendingEntry struct {
	session   *Session
	expiresAt time.Time
}

type secretEntry struct {
	secret    []byte
	expiresAt time.Time
}

// NewRegistry returns an empty registry whose entries live for ttl.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		pending:   make(map[string]pendingEntry),
		secrets:   make(map[string]secretEntry),
		completed: make(map[string]time.Time),
	}
}

// Begin opens a new session and returns it with the local public key to
// send to the peer.
func (r *Registry) Begin() (*Session, []byte, error) {
	s, err := NewSession()
	if err != nil {
		return nil, nil, err
	}
	pub, err := s.LocalPublicKey()
	if err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	r.pending[s.ID()] = pendingEntry{session: s, expiresAt: r.now().Add(r.ttl)}
	r.mu.Unlock()

	return s, pub, nil
}

// Complete finishes the pending session id with the peer's key and keeps the
// derived secret for [Registry.Take]. The pending entry is consumed even on
// failure.
func (r *Registry) Complete(id string, remote []byte) error {
	r.mu.Lock()
	entry, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	now := r.now()
	r.mu.Unlock()

	if !ok {
		if r.wasCompleted(id, now) {
			return fmt.Errorf("%w: %s", ErrSessionAlreadyComplete, id)
		}
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if now.After(entry.expiresAt) {
		_ = entry.session.Fail(ErrSessionExpired)
		return ErrSessionExpired
	}

	secret, err := entry.session.Complete(remote)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.secrets[id] = secretEntry{secret: secret, expiresAt: now.Add(r.ttl)}
	r.completed[id] = now.Add(r.ttl)
	r.mu.Unlock()
	return nil
}

// Take hands out the secret derived for id exactly once. The caller owns the
// returned slice and should zeroize it after use.
func (r *Registry) Take(id string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.secrets[id]
	if !ok {
		if _, pending := r.pending[id]; pending {
			return nil, fmt.Errorf("%w: session %s not completed", ErrInvalidTransition, id)
		}
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.secrets, id)

	if r.now().After(entry.expiresAt) {
		crypto.Zero(entry.secret)
		return nil, ErrSessionExpired
	}
	return entry.secret, nil
}

// Sweep drops every entry that expired before now and returns how many were
// removed. Secrets are zeroized, sessions are failed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.pending {
		if now.After(e.expiresAt) {
			_ = e.session.Fail(ErrSessionExpired)
			delete(r.pending, id)
			removed++
		}
	}
	for id, e := range r.secrets {
		if now.After(e.expiresAt) {
			crypto.Zero(e.secret)
			delete(r.secrets, id)
			removed++
		}
	}
	for id, expiresAt := range r.completed {
		if now.After(expiresAt) {
			delete(r.completed, id)
		}
	}
	return removed
}

// Len returns the number of pending sessions plus stored secrets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending) + len(r.secrets)
}

func (r *Registry) wasCompleted(id string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiresAt, ok := r.completed[id]
	if ok && now.After(expiresAt) {
		delete(r.completed, id)
		return false
	}
	return ok
}

