package mldsa

import "io"

// This file is the package's top-level functional surface, mirroring
// spec §6's three entry points (keygen/sign/verify) for callers who
// would rather pass raw key bytes around than hold onto *PublicKey/
// *PrivateKey values. The method-based API on PublicKey/PrivateKey
// (keys.go, sign.go, verify.go) is the same logic; this is just
// encode/decode glue around it.

// Keygen generates a key pair at lvl from rand and returns both keys
// already encoded to their wire format.
func Keygen(lvl Level, rand io.Reader) (pk, sk []byte, err error) {
	pub, priv, err := GenerateKey(lvl, rand)
	if err != nil {
		return nil, nil, err
	}
	return pub.Bytes(), priv.Bytes(), nil
}

// KeygenFromSeed is Keygen's deterministic counterpart, for KAT
// reproduction (spec §6, §8).
func KeygenFromSeed(lvl Level, seed []byte) (pk, sk []byte, err error) {
	pub, priv, err := NewKeyFromSeed(lvl, seed)
	if err != nil {
		return nil, nil, err
	}
	return pub.Bytes(), priv.Bytes(), nil
}

// SignBytes signs msg with an encoded secret key, returning an
// encoded signature. It is deterministic given (sk, msg, context).
func SignBytes(lvl Level, rand io.Reader, skBytes, msg, context []byte) ([]byte, error) {
	sk, err := NewPrivateKey(lvl, skBytes)
	if err != nil {
		return nil, err
	}
	return sk.SignWithContext(rand, msg, context)
}

// VerifyBytes verifies an encoded signature against an encoded public
// key. Any malformed input (wrong key/signature length, corrupt hint
// encoding) reports as "invalid" exactly like a bad signature — the
// three internal error kinds of spec §7 are not distinguishable here,
// by design.
func VerifyBytes(lvl Level, pkBytes, msg, sig, context []byte) bool {
	pk, err := NewPublicKey(lvl, pkBytes)
	if err != nil {
		return false
	}
	return pk.Verify(sig, msg, context)
}
