package mldsa

import "golang.org/x/crypto/sha3"

// This file wraps the Keccak-f[1600] sponge of golang.org/x/crypto/sha3
// (its SHAKE128/SHAKE256) with the streaming constructions FIPS 204
// builds on top of it (spec §4.4): seed-and-16-bit-nonce absorption for
// the XOF used everywhere in ExpandA/ExpandS/ExpandMask, and the
// fixed-length hash call used to derive tr, mu, and rho''.
// sha3.ShakeHash is itself a sponge exposing Write (absorb) and Read
// (squeeze); nothing here reimplements Keccak-f, it only names the
// constructions the spec calls out.

// stream128 returns a SHAKE128 XOF primed with seed || LE16(nonce),
// ready to be squeezed via Read. Used by ExpandA (the uniform
// rejection sampler over Z_q).
func stream128(seed []byte, nonce uint16) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	return h
}

// stream256 returns a SHAKE256 XOF primed with seed || LE16(nonce).
// Used by ExpandS (the eta-bounded rejection sampler) and ExpandMask
// (the gamma1-bounded sampler).
func stream256(seed []byte, nonce uint16) sha3.ShakeHash {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	return h
}

// hash256 computes SHAKE256(data...) truncated/extended to len(out)
// bytes — FIPS 204's H function, used for tr = H(pk), mu = H(tr||M'),
// and rho'' = H(K||mu). The challenge seed c~ = H(mu||w1-packed) is
// squeezed from its own SHAKE256 instance in signLoop and verifyInternal.
func hash256(out []byte, data ...[]byte) {
	h := sha3.NewShake256()
	for _, d := range data {
		h.Write(d)
	}
	h.Read(out)
}

// shake128Sum and shake256Sum are used only by the package's
// self-tests (spec §8 scenario 7's SHAKE spot checks) to exercise the
// sponge directly, independent of any Dilithium-specific framing.
func shake128Sum(out, data []byte) {
	h := sha3.NewShake128()
	h.Write(data)
	h.Read(out)
}

func shake256Sum(out, data []byte) {
	h := sha3.NewShake256()
	h.Write(data)
	h.Read(out)
}
