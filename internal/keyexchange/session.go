package keyexchange

import (
	"bytes"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-stego-channel/internal/crypto"
)

const (
	// PublicKeySize is the length of an uncompressed P-256 point.
	PublicKeySize = 65

	// SecretSize is the length of the derived channel secret.
	SecretSize = 32

	hkdfInfo = "stego-channel/ecdh/v1"
)

// State is the position of a [Session] in its lifecycle.
type State int

const (
	StateCreated State = iota
	StateAwaitingRemote
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingRemote:
		return "awaiting_remote"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is one side of a single ECDH exchange. It is safe for concurrent
// use.
type Session struct {
	mu sync.Mutex

	id     string
	priv   *ecdh.PrivateKey
	pub    []byte
	remote []byte
	state  State
	cause  error
}

// NewSession generates an ephemeral P-256 key pair.
func NewSession() (*Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	return &Session{
		id:    id.String(),
		priv:  priv,
		pub:   priv.PublicKey().Bytes(),
		state: StateCreated,
	}, nil
}

// ID returns the session identifier (UUID v7).
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the reason a failed session failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}

// RemotePublicKey returns the peer key accepted by [Session.Complete], or nil.
func (s *Session) RemotePublicKey() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.remote)
}

// LocalPublicKey exports the uncompressed local point and moves a Created
// session to AwaitingRemote. The same bytes are returned on every call.
func (s *Session) LocalPublicKey() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateCreated:
		s.state = StateAwaitingRemote
	case StateAwaitingRemote:
	case StateCompleted:
		return nil, ErrSessionAlreadyComplete
	default:
		return nil, ErrSessionFailed
	}
	return bytes.Clone(s.pub), nil
}

// Complete accepts the peer's public key and returns the derived secret.
// The session keeps no copy of it. An invalid key fails the session.
func (s *Session) Complete(remote []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAwaitingRemote:
	case StateCreated:
		return nil, fmt.Errorf("%w: local public key not sent yet", ErrInvalidTransition)
	case StateCompleted:
		return nil, ErrSessionAlreadyComplete
	default:
		return nil, ErrSessionFailed
	}

	peer, err := parsePublicKey(remote)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	shared, err := s.priv.ECDH(peer)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRemoteKey, err)
		s.fail(err)
		return nil, err
	}
	defer crypto.Zero(shared)

	secret, err := expand(shared, s.pub, remote)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.remote = bytes.Clone(remote)
	s.priv = nil
	s.state = StateCompleted
	return secret, nil
}

// Fail moves a non-terminal session to Failed, e.g. after a transport error.
func (s *Session) Fail(cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateCompleted:
		return ErrSessionAlreadyComplete
	case StateFailed:
		return ErrSessionFailed
	}
	s.fail(cause)
	return nil
}

func (s *Session) fail(cause error) {
	s.state = StateFailed
	s.cause = cause
	s.priv = nil
}

// parsePublicKey accepts only uncompressed on-curve points.
func parsePublicKey(b []byte) (*ecdh.PublicKey, error) {
	if len(b) != PublicKeySize || b[0] != 0x04 {
		return nil, fmt.Errorf("%w: want %d-byte uncompressed point", ErrInvalidRemoteKey, PublicKeySize)
	}
	pub, err := ecdh.P256().NewPublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRemoteKey, err)
	}
	return pub, nil
}

func expand(shared, a, b []byte) ([]byte, error) {
	salt := make([]byte, 0, 2*PublicKeySize)
	if bytes.Compare(a, b) <= 0 {
		salt = append(append(salt, a...), b...)
	} else {
		salt = append(append(salt, b...), a...)
	}

	secret := make([]byte, SecretSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, []byte(hkdfInfo)), secret); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return secret, nil
}
