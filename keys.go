package mldsa

import (
	"crypto"
	"io"
)

// PublicKey is an ML-DSA public key for a fixed Level.
type PublicKey struct {
	level Level
	rho   [SeedSize]byte
	t1    []ringElement // k polynomials, high bits of t
	tr    [trBytes]byte
	a     []nttElement // cached expansion of rho, k*l entries
}

// PrivateKey is an ML-DSA private key for a fixed Level. It retains
// the expanded matrix A so that repeated Sign calls do not re-expand
// it from rho every time.
type PrivateKey struct {
	level Level
	rho   [SeedSize]byte
	key   [SeedSize]byte
	tr    [trBytes]byte
	s1    []ringElement // l polynomials
	s2    []ringElement // k polynomials
	t0    []ringElement // k polynomials
	a     []nttElement
}

// Level returns the security level this key pair was generated for.
func (pk *PublicKey) Level() Level  { return pk.level }
func (sk *PrivateKey) Level() Level { return sk.level }

// Compile-time interface assertions.
var (
	_ crypto.Signer    = (*PrivateKey)(nil)
	_ crypto.PublicKey = (*PublicKey)(nil)
)

// SignerOpts implements crypto.SignerOpts, carrying an optional
// context string for domain separation, as FIPS 204's external
// Sign/Verify algorithms define it.
type SignerOpts struct {
	// Context is an optional context string (at most 255 bytes). A
	// nil Context means no domain separation.
	Context []byte
}

// HashFunc returns 0: ML-DSA signs the message directly and has no
// pre-hash mode (spec Non-goals).
func (o *SignerOpts) HashFunc() crypto.Hash { return 0 }

// GenerateKey generates a fresh ML-DSA key pair at the given level,
// drawing a 32-byte seed from rand. Implements the external keygen(
// level, seed_opt) interface of spec §6 for the random-seed case.
func GenerateKey(lvl Level, rand io.Reader) (*PublicKey, *PrivateKey, error) {
	p, err := paramsFor(lvl)
	if err != nil {
		return nil, nil, err
	}
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, err
	}
	return keyGenInternal(p, seed[:])
}

// NewKeyFromSeed deterministically reconstructs the key pair that
// GenerateKey would have produced for the given 32-byte seed.
// Implements the explicit-seed case of keygen(level, seed_opt); this
// is what makes KAT reproduction possible (spec §6/§8).
func NewKeyFromSeed(lvl Level, seed []byte) (*PublicKey, *PrivateKey, error) {
	p, err := paramsFor(lvl)
	if err != nil {
		return nil, nil, err
	}
	if len(seed) != SeedSize {
		return nil, nil, ErrInvalidInputLength
	}
	return keyGenInternal(p, seed)
}

// Public returns the public key corresponding to sk, reconstructing
// t1 from s1, s2, and the already-expanded matrix A. This is what
// lets a PrivateKey parsed from raw bytes alone (with no stored t1)
// still implement crypto.Signer.
func (sk *PrivateKey) Public() crypto.PublicKey {
	p, _ := paramsFor(sk.level)
	return &PublicKey{
		level: sk.level,
		rho:   sk.rho,
		tr:    sk.tr,
		a:     sk.a,
		t1:    computeT1(p, sk.a, sk.s1, sk.s2),
	}
}

// PublicKey returns the public key for this private key, typed as
// *PublicKey rather than crypto.PublicKey.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return sk.Public().(*PublicKey)
}

// computeT1 recomputes t = invNTT(A . NTT(s1)) + s2 and returns its
// high bits, i.e. the t1 component of the public key.
func computeT1(p *params, a []nttElement, s1, s2 []ringElement) []ringElement {
	s1NTT := nttVec(s1)
	tNTT := matVecMulNTT(p, a, s1NTT)
	t := addVec(invNTTVec(tNTT), s2)

	t1 := make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		for j := 0; j < polyN; j++ {
			t1[i][j], _ = power2Round(t[i][j])
		}
	}
	return t1
}

// Equal reports whether pk and other are the same public key, per
// crypto.PublicKey's Equal convention.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok || o.level != pk.level || len(o.t1) != len(pk.t1) {
		return false
	}
	if pk.rho != o.rho {
		return false
	}
	for i := range pk.t1 {
		if pk.t1[i] != o.t1[i] {
			return false
		}
	}
	return true
}

// Bytes returns the FIPS 204 encoded public key: rho || pack_t1(t1).
func (pk *PublicKey) Bytes() []byte {
	p, _ := paramsFor(pk.level)
	b := make([]byte, p.publicKeySize())
	copy(b[:SeedSize], pk.rho[:])
	offset := SeedSize
	for i := 0; i < p.k; i++ {
		copy(b[offset:], packT1(pk.t1[i]))
		offset += encodingSizeT1
	}
	return b
}

// Bytes returns the FIPS 204 encoded private key: rho || key || tr ||
// pack_eta(s1) || pack_eta(s2) || pack_t0(t0).
func (sk *PrivateKey) Bytes() []byte {
	p, _ := paramsFor(sk.level)
	b := make([]byte, p.privateKeySize())
	copy(b[:SeedSize], sk.rho[:])
	copy(b[SeedSize:2*SeedSize], sk.key[:])
	copy(b[2*SeedSize:2*SeedSize+trBytes], sk.tr[:])

	offset := 2*SeedSize + trBytes
	for i := 0; i < p.l; i++ {
		copy(b[offset:], packEta(sk.s1[i], p.eta))
		offset += p.etaPolyBytes
	}
	for i := 0; i < p.k; i++ {
		copy(b[offset:], packEta(sk.s2[i], p.eta))
		offset += p.etaPolyBytes
	}
	for i := 0; i < p.k; i++ {
		copy(b[offset:], packT0(sk.t0[i]))
		offset += encodingSizeT0
	}
	return b
}

// NewPublicKey parses an encoded public key for lvl. It re-expands
// the matrix A from rho (it is not part of the wire format) and
// recomputes tr = H(pk), matching what KeyGen would have produced.
func NewPublicKey(lvl Level, b []byte) (*PublicKey, error) {
	p, err := paramsFor(lvl)
	if err != nil {
		return nil, err
	}
	if len(b) != p.publicKeySize() {
		return nil, ErrInvalidInputLength
	}

	pk := &PublicKey{level: lvl}
	copy(pk.rho[:], b[:SeedSize])

	pk.t1 = make([]ringElement, p.k)
	offset := SeedSize
	for i := 0; i < p.k; i++ {
		pk.t1[i] = unpackT1(b[offset : offset+encodingSizeT1])
		offset += encodingSizeT1
	}

	pk.a = expandA(p, pk.rho[:])
	hash256(pk.tr[:], b)
	return pk, nil
}

// NewPrivateKey parses an encoded private key for lvl.
func NewPrivateKey(lvl Level, b []byte) (*PrivateKey, error) {
	p, err := paramsFor(lvl)
	if err != nil {
		return nil, err
	}
	if len(b) != p.privateKeySize() {
		return nil, ErrInvalidInputLength
	}

	sk := &PrivateKey{level: lvl}
	copy(sk.rho[:], b[:SeedSize])
	copy(sk.key[:], b[SeedSize:2*SeedSize])
	copy(sk.tr[:], b[2*SeedSize:2*SeedSize+trBytes])

	offset := 2*SeedSize + trBytes
	sk.s1 = make([]ringElement, p.l)
	sk.s2 = make([]ringElement, p.k)
	sk.t0 = make([]ringElement, p.k)

	var err2 error
	for i := 0; i < p.l; i++ {
		sk.s1[i], err2 = unpackEta(b[offset:offset+p.etaPolyBytes], p.eta)
		if err2 != nil {
			return nil, err2
		}
		offset += p.etaPolyBytes
	}
	for i := 0; i < p.k; i++ {
		sk.s2[i], err2 = unpackEta(b[offset:offset+p.etaPolyBytes], p.eta)
		if err2 != nil {
			return nil, err2
		}
		offset += p.etaPolyBytes
	}
	for i := 0; i < p.k; i++ {
		sk.t0[i] = unpackT0(b[offset : offset+encodingSizeT0])
		offset += encodingSizeT0
	}

	sk.a = expandA(p, sk.rho[:])
	return sk, nil
}
