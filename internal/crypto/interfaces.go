package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/deriver_mock.go -package=mock

// Deriver turns a password or a key-agreement secret into [KeyMaterial].
//
// The flow used by the channel:
//
//	km    = Derive(ctx, secret, nil, n)        (hide: fresh salt)
//	frame = Seal(km, plaintext, ad)
//	km'   = Derive(ctx, secret, frame.Salt, n) (reveal: embedded salt)
//	pt    = Open(km', frame, ad)
type Deriver interface {
	// Derive stretches secret with salt. A nil salt makes Derive generate
	// SaltSize random bytes. Returns ErrWeakParameters when the cost is
	// below the algorithm minimum or the salt has the wrong size, and
	// ctx.Err() when the context is cancelled before stretching finishes.
	Derive(ctx context.Context, secret, salt []byte, iterations int) (*KeyMaterial, error)

	// Algorithm reports which KDF this deriver runs.
	Algorithm() Algorithm
}
