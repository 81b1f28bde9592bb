package mldsa

import "golang.org/x/crypto/sha3"

// sampleUniformPoly generates a uniformly random ring element in NTT
// domain representation by rejection sampling 23-bit little-endian
// chunks of SHAKE128 output, keeping those below q. Implements FIPS
// 204 Algorithm 30 (RejNTTPoly / SampleInBall's sibling ExpandA step).
func sampleUniformPoly(rho []byte, col, row byte) nttElement {
	h := stream128(rho, uint16(row)<<8|uint16(col))

	var buf [shake128Rate]byte
	var a nttElement
	j := 0

	for {
		h.Read(buf[:])
		for i := 0; i+2 < len(buf) && j < polyN; i += 3 {
			d := uint32(buf[i]) | uint32(buf[i+1])<<8 | (uint32(buf[i+2])&0x7f)<<16
			if d < q {
				a[j] = fieldElement(d)
				j++
			}
		}
		if j >= polyN {
			return a
		}
	}
}

// expandA expands the public seed rho into the k x l matrix A, kept
// in NTT domain and stored row-major (spec §4.6). A[i][j] corresponds
// to sampleUniformPoly(rho, j, i) — the byte order FIPS 204 fixes so
// that encoders and decoders agree on the same matrix from rho alone.
func expandA(p *params, rho []byte) []nttElement {
	a := make([]nttElement, p.k*p.l)
	for i := 0; i < p.k; i++ {
		for j := 0; j < p.l; j++ {
			a[i*p.l+j] = sampleUniformPoly(rho, byte(j), byte(i))
		}
	}
	return a
}

// sampleBoundedPoly generates a polynomial with every coefficient in
// [-eta, eta] by rejection-sampling nibbles of SHAKE256 output.
// Implements FIPS 204 Algorithm 31 (RejBoundedPoly).
func sampleBoundedPoly(seed []byte, eta int, nonce uint16) ringElement {
	h := stream256(seed, nonce)

	var buf [shake256Rate]byte
	var a ringElement
	j := 0
	offset := len(buf)

	for j < polyN {
		if offset >= len(buf) {
			h.Read(buf[:])
			offset = 0
		}
		z0 := buf[offset] & 0x0f
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			if z0 < 15 {
				z0 -= (z0 / 5) * 5
				a[j] = fieldSub(2, fieldElement(z0))
				j++
			}
			if j < polyN && z1 < 15 {
				z1 -= (z1 / 5) * 5
				a[j] = fieldSub(2, fieldElement(z1))
				j++
			}
		} else { // eta == 4
			if z0 <= 8 {
				a[j] = fieldSub(4, fieldElement(z0))
				j++
			}
			if j < polyN && z1 <= 8 {
				a[j] = fieldSub(4, fieldElement(z1))
				j++
			}
		}
	}
	return a
}

// sampleChallenge draws the tau-sparse {-1,0,+1} challenge polynomial
// from its 32-byte seed via a Fisher-Yates-style shuffle over the high
// tau positions. Implements FIPS 204 Algorithm 29 (SampleInBall).
func sampleChallenge(seed []byte, tau int) ringElement {
	// SampleInBall absorbs only the seed: no nonce, unlike ExpandS/
	// ExpandMask, so this goes straight to the sponge rather than
	// through stream256.
	h := sha3.NewShake256()
	h.Write(seed)

	var buf [shake256Rate]byte
	h.Read(buf[:])

	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(buf[i]) << (8 * i)
	}
	offset := 8

	var c ringElement
	for i := polyN - tau; i < polyN; i++ {
		var j byte
		for {
			if offset >= len(buf) {
				h.Read(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}
		c[i] = c[j]
		if signs&1 == 0 {
			c[j] = 1
		} else {
			c[j] = q - 1
		}
		signs >>= 1
	}
	return c
}

// expandMask derives the masking polynomial y from rho'' and a
// 16-bit nonce, with coefficients uniform in (-gamma1, gamma1].
// Implements FIPS 204 Algorithm 34 (ExpandMask).
func expandMask(rhoPrime []byte, nonce uint16, gamma1Bits int) ringElement {
	h := stream256(rhoPrime, nonce)

	var f ringElement
	if gamma1Bits == 17 {
		var buf [polyN * 18 / 8]byte
		h.Read(buf[:])
		unpackGamma1(buf[:], &f, 1<<17, 18)
	} else {
		var buf [polyN * 20 / 8]byte
		h.Read(buf[:])
		unpackGamma1(buf[:], &f, 1<<19, 20)
	}
	return f
}
