package mldsa

import (
	"crypto"
	"golang.org/x/crypto/sha3"
	"io"
)

// Sign implements crypto.Signer: digest is treated as the message to
// sign directly, since ML-DSA has no pre-hash mode (opts.HashFunc()
// must be 0). If opts is a *SignerOpts, its Context field is used for
// domain separation.
func (sk *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 {
		return nil, ErrPreHashed
	}
	var context []byte
	if o, ok := opts.(*SignerOpts); ok && o != nil {
		context = o.Context
	}
	return sk.SignWithContext(rand, digest, context)
}

// SignMessage implements crypto.MessageSigner (Go 1.25+): it is the
// same operation as Sign, ML-DSA never distinguishes "message" from
// "digest" since it has no pre-hash mode.
func (sk *PrivateKey) SignMessage(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.Sign(rand, message, opts)
}

// SignWithContext produces a deterministic signature over message
// under the given context (spec §4.9). rand is not read: rho'' is
// derived from the private key seed and the message digest alone,
// rho'' = H(key || mu), so the same (key, message, context) always
// yields the same signature.
func (sk *PrivateKey) SignWithContext(rand io.Reader, message, context []byte) ([]byte, error) {
	return sk.signWithRnd(nil, message, context)
}

// SignRandomized produces a non-deterministic signature: unlike
// Sign, rho'' is drawn directly from rand instead of being derived
// from (key, mu). This is the optional refinement flagged as an
// open question in spec §9 — every other step is identical to Sign.
func (sk *PrivateKey) SignRandomized(rand io.Reader, message, context []byte) ([]byte, error) {
	if len(context) > maxContextSize {
		return nil, ErrContextTooLong
	}
	mPrime := formatMessage(context, message)

	var mu [crhBytes]byte
	hash256(mu[:], sk.tr[:], mPrime)

	var rhoPrime [crhBytes]byte
	if _, err := io.ReadFull(rand, rhoPrime[:]); err != nil {
		return nil, err
	}

	p, err := paramsFor(sk.level)
	if err != nil {
		return nil, err
	}
	return signLoop(p, sk, mu[:], rhoPrime[:])
}

// signWithRnd implements ML-DSA.Sign_internal (FIPS 204 Algorithm 7)
// for the deterministic profile: rho'' = H(key || rnd || mu).
func (sk *PrivateKey) signWithRnd(rnd, message, context []byte) ([]byte, error) {
	if len(context) > maxContextSize {
		return nil, ErrContextTooLong
	}
	mPrime := formatMessage(context, message)
	return sk.signInternal(rnd, mPrime)
}

func (sk *PrivateKey) signInternal(rnd, mPrime []byte) ([]byte, error) {
	var mu [crhBytes]byte
	hash256(mu[:], sk.tr[:], mPrime)

	var rhoPrime [crhBytes]byte
	hash256(rhoPrime[:], sk.key[:], rnd, mu[:])

	p, err := paramsFor(sk.level)
	if err != nil {
		return nil, err
	}
	return signLoop(p, sk, mu[:], rhoPrime[:])
}

// formatMessage builds M' = 0 || len(ctx) || ctx || msg, the domain
// separated message ML-DSA actually signs (spec §4.9 step; FIPS 204's
// external Sign/Verify wrap the raw message this way before handing
// it to the internal algorithms).
func formatMessage(context, message []byte) []byte {
	mPrime := make([]byte, 2+len(context)+len(message))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], message)
	return mPrime
}

// signLoop runs the Fiat-Shamir-with-aborts rejection loop (spec
// §4.9 step 5) until it produces a signature satisfying every bound,
// or gives up after maxSignAttempts rounds (Design Notes §9).
func signLoop(p *params, sk *PrivateKey, mu, rhoPrime []byte) ([]byte, error) {
	s1NTT := nttVec(sk.s1)
	s2NTT := nttVec(sk.s2)
	t0NTT := nttVec(sk.t0)

	cTildeBytes := p.cTildeBytes()

	for kappa := 0; kappa < maxSignAttempts; kappa++ {
		y := make([]ringElement, p.l)
		for i := 0; i < p.l; i++ {
			y[i] = expandMask(rhoPrime, uint16(kappa*p.l+i), p.gamma1Bits)
		}
		yNTT := nttVec(y)

		wNTT := matVecMulNTT(p, sk.a, yNTT)
		w := invNTTVec(wNTT)

		w1 := make([]ringElement, p.k)
		for i := 0; i < p.k; i++ {
			for j := 0; j < polyN; j++ {
				w1[i][j] = fieldElement(highBits(w[i][j], p.gamma2))
			}
		}

		h := sha3.NewShake256()
		h.Write(mu)
		for i := 0; i < p.k; i++ {
			h.Write(packW1(w1[i], p.gamma2))
		}
		cTilde := make([]byte, cTildeBytes)
		h.Read(cTilde)

		c := sampleChallenge(cTilde, p.tau)
		cNTT := ntt(c)

		cs1 := invNTTVec(scaleByChallenge(cNTT, s1NTT))
		z := addVec(y, cs1)
		if vecInfinityNorm(z) >= uint32(p.gamma1-p.beta) {
			continue
		}

		cs2 := invNTTVec(scaleByChallenge(cNTT, s2NTT))
		r0 := make([][polyN]int32, p.k)
		for i := 0; i < p.k; i++ {
			for j := 0; j < polyN; j++ {
				_, r0[i][j] = decompose(fieldSub(w[i][j], cs2[i][j]), p.gamma2)
			}
		}
		if vecInfinityNormSigned(r0) >= int32(p.gamma2-p.beta) {
			continue
		}

		ct0 := invNTTVec(scaleByChallenge(cNTT, t0NTT))
		if vecInfinityNorm(ct0) >= uint32(p.gamma2) {
			continue
		}

		hints := make([]ringElement, p.k)
		for i := 0; i < p.k; i++ {
			for j := 0; j < polyN; j++ {
				r := fieldSub(w[i][j], cs2[i][j])
				hints[i][j] = makeHint(ct0[i][j], r, p.gamma2)
			}
		}
		if popcount(hints) > p.omega {
			continue
		}

		sig := make([]byte, p.signatureSize())
		copy(sig[:cTildeBytes], cTilde)
		offset := cTildeBytes
		for i := 0; i < p.l; i++ {
			copy(sig[offset:], packZ(z[i], p.gamma1, p.zPolyBytes*8/polyN))
			offset += p.zPolyBytes
		}
		copy(sig[offset:], packHint(hints, p.omega))
		return sig, nil
	}
	return nil, ErrSamplerExhausted
}
