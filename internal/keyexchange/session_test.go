package keyexchange

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSession(t *testing.T) (*Session, []byte) {
	t.Helper()
	s, err := NewSession()
	require.NoError(t, err)
	pub, err := s.LocalPublicKey()
	require.NoError(t, err)
	return s, pub
}

// ─────────────────────────────────────────────
// Session
// ─────────────────────────────────────────────

func TestSession_KeyAgreement(t *testing.T) {
	alice, alicePub := openSession(t)
	bob, bobPub := openSession(t)

	a, err := alice.Complete(bobPub)
	require.NoError(t, err)
	b, err := bob.Complete(alicePub)
	require.NoError(t, err)

	assert.Len(t, a, SecretSize)
	assert.Equal(t, a, b)
	assert.Equal(t, StateCompleted, alice.State())
	assert.Equal(t, bobPub, alice.RemotePublicKey())
}

func TestSession_DifferentPeersDifferentSecrets(t *testing.T) {
	alice, _ := openSession(t)
	_, bobPub := openSession(t)
	carol, _ := openSession(t)
	_, davePub := openSession(t)

	ab, err := alice.Complete(bobPub)
	require.NoError(t, err)
	cd, err := carol.Complete(davePub)
	require.NoError(t, err)

	assert.NotEqual(t, ab, cd)
}

func TestSession_LocalPublicKey(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)
	assert.Equal(t, StateCreated, s.State())

	first, err := s.LocalPublicKey()
	require.NoError(t, err)
	second, err := s.LocalPublicKey()
	require.NoError(t, err)

	assert.Len(t, first, PublicKeySize)
	assert.Equal(t, byte(0x04), first[0])
	assert.Equal(t, first, second)
	assert.Equal(t, StateAwaitingRemote, s.State())
}

func TestSession_IDIsUUIDv7(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	require.Len(t, s.ID(), 36)
	assert.Equal(t, byte('7'), s.ID()[14])
}

func TestSession_CompleteBeforePublish(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)
	_, peer := openSession(t)

	_, err = s.Complete(peer)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateCreated, s.State())
}

func TestSession_SingleUse(t *testing.T) {
	s, _ := openSession(t)
	_, peer := openSession(t)

	_, err := s.Complete(peer)
	require.NoError(t, err)

	_, err = s.Complete(peer)
	assert.ErrorIs(t, err, ErrSessionAlreadyComplete)

	_, err = s.LocalPublicKey()
	assert.ErrorIs(t, err, ErrSessionAlreadyComplete)

	assert.ErrorIs(t, s.Fail(errors.New("late")), ErrSessionAlreadyComplete)
}

func TestSession_InvalidRemoteKey(t *testing.T) {
	_, valid := openSession(t)
	compressed := append([]byte{0x02}, valid[1:33]...)
	offCurve := append([]byte(nil), valid...)
	offCurve[64] ^= 0x01

	cases := map[string][]byte{
		"empty":      nil,
		"identity":   {0x00},
		"compressed": compressed,
		"off curve":  offCurve,
		"wrong tag":  append([]byte{0x05}, valid[1:]...),
	}
	for name, remote := range cases {
		t.Run(name, func(t *testing.T) {
			s, _ := openSession(t)

			_, err := s.Complete(remote)

			require.ErrorIs(t, err, ErrInvalidRemoteKey)
			assert.Equal(t, StateFailed, s.State())
			assert.ErrorIs(t, s.Err(), ErrInvalidRemoteKey)

			_, err = s.Complete(valid)
			assert.ErrorIs(t, err, ErrSessionFailed)
		})
	}
}

func TestSession_Fail(t *testing.T) {
	s, _ := openSession(t)
	cause := errors.New("connection reset")

	require.NoError(t, s.Fail(cause))

	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, cause, s.Err())
	assert.ErrorIs(t, s.Fail(cause), ErrSessionFailed)

	_, err := s.LocalPublicKey()
	assert.ErrorIs(t, err, ErrSessionFailed)
}

func TestSession_ConcurrentComplete(t *testing.T) {
	s, _ := openSession(t)
	_, peer := openSession(t)

	const n = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		won  int
		lost int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Complete(peer)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, ErrSessionAlreadyComplete):
				lost++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting_remote", StateAwaitingRemote.String())
	assert.Equal(t, "state(9)", State(9).String())
}

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

func TestRegistry_BeginCompleteTake(t *testing.T) {
	reg := NewRegistry(time.Minute)
	client, clientPub := openSession(t)

	s, serverPub, err := reg.Begin()
	require.NoError(t, err)
	require.NoError(t, reg.Complete(s.ID(), clientPub))

	want, err := client.Complete(serverPub)
	require.NoError(t, err)

	got, err := reg.Take(s.ID())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = reg.Take(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_CompleteTwice(t *testing.T) {
	reg := NewRegistry(time.Minute)
	_, clientPub := openSession(t)
	s, _, err := reg.Begin()
	require.NoError(t, err)

	require.NoError(t, reg.Complete(s.ID(), clientPub))

	assert.ErrorIs(t, reg.Complete(s.ID(), clientPub), ErrSessionAlreadyComplete)
}

func TestRegistry_CompleteAfterTake(t *testing.T) {
	reg := NewRegistry(time.Minute)
	_, clientPub := openSession(t)
	s, _, err := reg.Begin()
	require.NoError(t, err)

	require.NoError(t, reg.Complete(s.ID(), clientPub))
	_, err = reg.Take(s.ID())
	require.NoError(t, err)

	assert.ErrorIs(t, reg.Complete(s.ID(), clientPub), ErrSessionAlreadyComplete)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_CompletedIDForgottenAfterTTL(t *testing.T) {
	reg := NewRegistry(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }
	_, clientPub := openSession(t)
	s, _, err := reg.Begin()
	require.NoError(t, err)
	require.NoError(t, reg.Complete(s.ID(), clientPub))
	_, err = reg.Take(s.ID())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	reg.Sweep(now)

	assert.ErrorIs(t, reg.Complete(s.ID(), clientPub), ErrSessionNotFound)
	assert.Empty(t, reg.completed)
}

func TestRegistry_UnknownSession(t *testing.T) {
	reg := NewRegistry(time.Minute)

	assert.ErrorIs(t, reg.Complete("nope", nil), ErrSessionNotFound)
	_, err := reg.Take("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_TakeBeforeComplete(t *testing.T) {
	reg := NewRegistry(time.Minute)
	s, _, err := reg.Begin()
	require.NoError(t, err)

	_, err = reg.Take(s.ID())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRegistry_InvalidKeyConsumesSession(t *testing.T) {
	reg := NewRegistry(time.Minute)
	s, _, err := reg.Begin()
	require.NoError(t, err)

	require.ErrorIs(t, reg.Complete(s.ID(), []byte{0x04}), ErrInvalidRemoteKey)

	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Expiry(t *testing.T) {
	reg := NewRegistry(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }
	_, clientPub := openSession(t)

	s, _, err := reg.Begin()
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, reg.Complete(s.ID(), clientPub), ErrSessionExpired)
	assert.Equal(t, StateFailed, s.State())
}

func TestRegistry_Sweep(t *testing.T) {
	reg := NewRegistry(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }
	_, clientPub := openSession(t)

	pending, _, err := reg.Begin()
	require.NoError(t, err)
	done, _, err := reg.Begin()
	require.NoError(t, err)
	require.NoError(t, reg.Complete(done.ID(), clientPub))

	secret := reg.secrets[done.ID()].secret
	require.Equal(t, 2, reg.Len())

	assert.Equal(t, 0, reg.Sweep(now.Add(30*time.Second)))
	assert.Equal(t, 2, reg.Sweep(now.Add(61*time.Second)))

	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, StateFailed, pending.State())
	assert.ErrorIs(t, pending.Err(), ErrSessionExpired)
	assert.Equal(t, make([]byte, SecretSize), secret, "swept secret must be zeroized")
}
