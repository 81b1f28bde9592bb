package mldsa

import "errors"

// The core distinguishes three internal failure kinds (spec §7). All
// three collapse to a single boolean at Verify's boundary — Verify
// never returns an error, only ok/not-ok — but NewPublicKey/
// NewPrivateKey surface ErrInvalidInputLength directly since a
// length mismatch there is a caller bug, not an adversarial signature.

var (
	// ErrInvalidInputLength is returned when a public key, private
	// key, or signature byte slice does not match the declared size
	// for its level.
	ErrInvalidInputLength = errors.New("mldsa: invalid input length")

	// errInvalidSignatureEncoding marks a structurally malformed
	// signature (bad hint-vector packing). It is only ever returned
	// internally by verifyInternal and is deliberately unexported:
	// callers must not be able to distinguish it from
	// errVerificationFailed, per §7's "must collapse them for public
	// reporting" rule.
	errInvalidSignatureEncoding = errors.New("mldsa: invalid signature encoding")

	// errVerificationFailed marks a structurally well-formed
	// signature whose recomputed challenge did not match. Also
	// unexported for the same reason.
	errVerificationFailed = errors.New("mldsa: verification failed")

	// ErrContextTooLong is returned when a context string longer
	// than 255 bytes is passed to Sign or SignRandomized.
	ErrContextTooLong = errors.New("mldsa: context too long")

	// ErrPreHashed is returned when crypto.SignerOpts.HashFunc() is
	// nonzero: ML-DSA has no pre-hash mode (spec Non-goals).
	ErrPreHashed = errors.New("mldsa: cannot sign pre-hashed digests, ML-DSA has no pre-hash mode")

	// ErrSamplerExhausted is returned if the Fiat-Shamir rejection
	// loop exceeds maxSignAttempts (Design Notes §9). In practice
	// this only fires on a broken entropy source or parameter table;
	// a healthy signer converges within single-digit iterations.
	ErrSamplerExhausted = errors.New("mldsa: rejection sampling did not converge")
)
