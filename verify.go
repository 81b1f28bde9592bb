package mldsa

import "golang.org/x/crypto/sha3"

// Verify checks sig over message under the given context, reporting
// only ok/not-ok (spec §4.10, §7: all three internal failure kinds —
// wrong length, malformed hint encoding, or a challenge mismatch —
// collapse to this single boolean, and verifiers never disclose which
// check failed).
func (pk *PublicKey) Verify(sig, message, context []byte) bool {
	if len(context) > maxContextSize {
		return false
	}
	p, err := paramsFor(pk.level)
	if err != nil || len(sig) != p.signatureSize() {
		return false
	}
	mPrime := formatMessage(context, message)
	return pk.verifyInternal(p, sig, mPrime) == nil
}

// verifyInternal implements ML-DSA.Verify_internal (FIPS 204
// Algorithm 8 / spec §4.10). It returns the specific internal reason
// a verification failed; Verify discards everything but nil-ness.
func (pk *PublicKey) verifyInternal(p *params, sig, mPrime []byte) error {
	cTildeBytes := p.cTildeBytes()
	cTilde := sig[:cTildeBytes]
	offset := cTildeBytes

	bitsPerZ := p.zPolyBytes * 8 / polyN
	z := make([]ringElement, p.l)
	for i := 0; i < p.l; i++ {
		z[i] = unpackZ(sig[offset:offset+p.zPolyBytes], p.gamma1, bitsPerZ)
		offset += p.zPolyBytes
	}
	if vecInfinityNorm(z) >= uint32(p.gamma1-p.beta) {
		return errVerificationFailed
	}

	hints := make([]ringElement, p.k)
	if !unpackHint(sig[offset:], hints, p.omega) {
		return errInvalidSignatureEncoding
	}
	if popcount(hints) > p.omega {
		return errInvalidSignatureEncoding
	}

	var mu [crhBytes]byte
	hash256(mu[:], pk.tr[:], mPrime)

	c := sampleChallenge(cTilde, p.tau)
	cNTT := ntt(c)

	zNTT := nttVec(z)
	azNTT := matVecMulNTT(p, pk.a, zNTT)

	t1Scaled := make([]nttElement, p.k)
	for i := 0; i < p.k; i++ {
		var scaled ringElement
		for j := 0; j < polyN; j++ {
			scaled[j] = pk.t1[i][j] << dropBits
		}
		t1Scaled[i] = ntt(scaled)
	}
	ct1NTT := scaleByChallenge(cNTT, t1Scaled)

	wApproxNTT := subVec(azNTT, ct1NTT)
	wApprox := invNTTVec(wApproxNTT)

	h := sha3.NewShake256()
	h.Write(mu[:])

	w1 := make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		for j := 0; j < polyN; j++ {
			w1[i][j] = useHint(hints[i][j], wApprox[i][j], p.gamma2)
		}
		h.Write(packW1(w1[i], p.gamma2))
	}

	cTildeCheck := make([]byte, cTildeBytes)
	h.Read(cTildeCheck)

	var diff byte
	for i := range cTilde {
		diff |= cTilde[i] ^ cTildeCheck[i]
	}
	if diff != 0 {
		return errVerificationFailed
	}
	return nil
}
