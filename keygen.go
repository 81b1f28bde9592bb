package mldsa

import "golang.org/x/crypto/sha3"

// keyGenInternal implements ML-DSA.KeyGen_internal (FIPS 204
// Algorithm 6): expand the seed into (rho, rho', K) via a single
// SHAKE256(zeta, 32+64+32 bytes) call with no extra domain-separation
// bytes, build A, sample s1/s2, derive t = A.s1 + s2, split it with
// Power2Round, and pack the two halves into the public and private
// key. Implements spec §4.8 step 1. It never retains the caller's
// seed past this call.
func keyGenInternal(p *params, seed []byte) (*PublicKey, *PrivateKey, error) {
	h := sha3.NewShake256()
	h.Write(seed)

	var expanded [SeedSize + crhBytes + SeedSize]byte // rho(32) || rhoPrime(64) || key(32)
	h.Read(expanded[:])

	sk := &PrivateKey{level: p.level}
	copy(sk.rho[:], expanded[:SeedSize])
	rhoPrime := expanded[SeedSize : SeedSize+crhBytes]
	copy(sk.key[:], expanded[SeedSize+crhBytes:])

	sk.s1 = make([]ringElement, p.l)
	for i := 0; i < p.l; i++ {
		sk.s1[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(i))
	}
	sk.s2 = make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		sk.s2[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(p.l+i))
	}

	sk.a = expandA(p, sk.rho[:])

	s1NTT := nttVec(sk.s1)
	tNTT := matVecMulNTT(p, sk.a, s1NTT)
	t := addVec(invNTTVec(tNTT), sk.s2)

	t1 := make([]ringElement, p.k)
	sk.t0 = make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		for j := 0; j < polyN; j++ {
			t1[i][j], sk.t0[i][j] = power2Round(t[i][j])
		}
	}

	pk := &PublicKey{level: p.level, rho: sk.rho, t1: t1, a: sk.a}
	pkBytes := pk.Bytes()
	hash256(sk.tr[:], pkBytes)
	pk.tr = sk.tr

	return pk, sk, nil
}
