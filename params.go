// Package mldsa implements ML-DSA (Module-Lattice Digital Signature
// Algorithm) as specified in FIPS 204, also known by its Round-3
// development name Dilithium.
//
// ML-DSA is a post-quantum digital signature scheme built on the
// hardness of Module Learning With Errors (MLWE) over the ring
// R_q = Z_q[X]/(X^256+1). This package supports the three NIST
// security levels:
//
//   - L2 (ML-DSA-44): NIST security category 2
//   - L3 (ML-DSA-65): NIST security category 3
//   - L5 (ML-DSA-87): NIST security category 5
//
// Unlike the per-level duplicated structs of earlier reference code,
// every operation here is parameterized by an explicit Level value.
// There is no package-level mutable state: two goroutines may run
// KeyGen/Sign/Verify concurrently, at the same or different levels,
// without synchronization, as long as each call observes its own
// immutable Level argument.
//
// Basic usage:
//
//	pub, priv, err := mldsa.GenerateKey(mldsa.L3, rand.Reader)
//	sig, err := priv.Sign(rand.Reader, message, nil)
//	ok := pub.Verify(sig, message, nil)
package mldsa

import "fmt"

// Level selects an ML-DSA security parameter set.
type Level int

const (
	// L2 is ML-DSA-44, NIST security category 2.
	L2 Level = iota
	// L3 is ML-DSA-65, NIST security category 3.
	L3
	// L5 is ML-DSA-87, NIST security category 5.
	L5
)

// String returns the canonical FIPS 204 parameter set name.
func (lvl Level) String() string {
	switch lvl {
	case L2:
		return "ML-DSA-44"
	case L3:
		return "ML-DSA-65"
	case L5:
		return "ML-DSA-87"
	default:
		return fmt.Sprintf("Level(%d)", int(lvl))
	}
}

// Universal FIPS 204 constants, independent of security level.
const (
	// polyN is the number of coefficients in a ring element.
	polyN = 256

	// q is the field modulus q = 2^23 - 2^13 + 1.
	q = 8380417

	// qMinus1Div2 is (q-1)/2, the centering point for signed reduction.
	qMinus1Div2 = (q - 1) / 2

	// dropBits is D, the number of low bits dropped by Power2Round.
	dropBits = 13

	// SeedSize is the size in bytes of the external key-generation seed ζ.
	SeedSize = 32

	// trBytes is the size in bytes of tr = H(pk).
	trBytes = 32

	// crhBytes is the size in bytes of the digest mu = H(tr || M').
	crhBytes = 64

	// shake128Rate is the SHAKE128 sponge rate in bytes.
	shake128Rate = 168

	// shake256Rate is the SHAKE256 sponge rate in bytes.
	shake256Rate = 136

	// maxContextSize is the largest context string Sign/Verify accept.
	maxContextSize = 255

	// maxSignAttempts bounds the Fiat-Shamir rejection loop (Design Notes §9).
	maxSignAttempts = 1024
)

// params holds the concrete parameter set for one security Level.
// It is built once per call from a small constant table below and
// threaded explicitly through every operation — see the package doc.
type params struct {
	level Level

	k, l int // matrix dimensions: A is k x l, s2/t in R^k, s1/y/z in R^l
	eta  int // secret-coefficient bound
	tau  int // number of +-1 coefficients in the challenge polynomial
	beta int // tau * eta, the rejection bound contribution from c*s

	gamma1     int // masking coefficient range, a power of two
	gamma1Bits int // log2(gamma1)
	gamma2     int // low-bits rounding range

	omega int // maximum popcount of the hint vector

	// Encoded polynomial sizes, in bytes.
	etaPolyBytes int
	zPolyBytes   int
	w1PolyBytes  int
}

// cTildeBytes returns |c-tilde|, the byte length of the challenge seed:
// a fixed 32 bytes for every level, per the signature frame c̃(32) ||
// pack_z(...) || pack_h(h).
func (p *params) cTildeBytes() int { return 32 }

// publicKeySize returns the encoded public-key length for this level.
func (p *params) publicKeySize() int {
	return SeedSize + p.k*encodingSizeT1
}

// privateKeySize returns the encoded private-key length for this level.
func (p *params) privateKeySize() int {
	return SeedSize + SeedSize + trBytes + (p.k+p.l)*p.etaPolyBytes + p.k*encodingSizeT0
}

// signatureSize returns the encoded signature length for this level.
func (p *params) signatureSize() int {
	return p.cTildeBytes() + p.l*p.zPolyBytes + p.omega + p.k
}

// paramTable is the FIPS 204 Table 1/2 constant set, keyed by Level.
var paramTable = map[Level]params{
	L2: {
		level: L2, k: 4, l: 4, eta: 2, tau: 39, beta: 2 * 39,
		gamma1: 1 << 17, gamma1Bits: 17, gamma2: (q - 1) / 88,
		omega: 80,
		etaPolyBytes: polyN * 3 / 8, zPolyBytes: polyN * 18 / 8, w1PolyBytes: polyN * 6 / 8,
	},
	L3: {
		level: L3, k: 6, l: 5, eta: 4, tau: 49, beta: 4 * 49,
		gamma1: 1 << 19, gamma1Bits: 19, gamma2: (q - 1) / 32,
		omega: 55,
		etaPolyBytes: polyN * 4 / 8, zPolyBytes: polyN * 20 / 8, w1PolyBytes: polyN * 4 / 8,
	},
	L5: {
		level: L5, k: 8, l: 7, eta: 2, tau: 60, beta: 2 * 60,
		gamma1: 1 << 19, gamma1Bits: 19, gamma2: (q - 1) / 32,
		omega: 75,
		etaPolyBytes: polyN * 3 / 8, zPolyBytes: polyN * 20 / 8, w1PolyBytes: polyN * 4 / 8,
	},
}

// paramsFor returns the parameter set for lvl, or an error for an
// unrecognized level. Every exported entry point funnels through
// this instead of trusting a caller-supplied struct.
func paramsFor(lvl Level) (*params, error) {
	p, ok := paramTable[lvl]
	if !ok {
		return nil, fmt.Errorf("mldsa: unsupported level %v", lvl)
	}
	return &p, nil
}

// PublicKeySize returns the encoded public-key size in bytes for lvl.
func PublicKeySize(lvl Level) int {
	p, err := paramsFor(lvl)
	if err != nil {
		return 0
	}
	return p.publicKeySize()
}

// PrivateKeySize returns the encoded private-key size in bytes for lvl.
func PrivateKeySize(lvl Level) int {
	p, err := paramsFor(lvl)
	if err != nil {
		return 0
	}
	return p.privateKeySize()
}

// SignatureSize returns the encoded signature size in bytes for lvl.
func SignatureSize(lvl Level) int {
	p, err := paramsFor(lvl)
	if err != nil {
		return 0
	}
	return p.signatureSize()
}

// Fixed packing widths that do not vary by level (t1, t0 are encoded
// the same way for every parameter set; only eta/z/w1 widths differ).
const (
	encodingSizeT1 = polyN * 10 / 8
	encodingSizeT0 = polyN * 13 / 8
)
