//go:build go1.25

package mldsa

import "crypto"

// Compile-time assertion that PrivateKey satisfies crypto.MessageSigner
// (added in Go 1.25), which signs the message directly rather than a
// pre-computed digest — the natural fit for ML-DSA, which has no
// pre-hash mode at all.
var _ crypto.MessageSigner = (*PrivateKey)(nil)
