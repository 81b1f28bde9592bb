package mldsa

// power2Round splits r into high bits r1 and low bits r0 such that
// r = r1*2^D + r0 with r0 in (-2^(D-1), 2^(D-1)]. Implements FIPS 204
// Algorithm 35.
func power2Round(r fieldElement) (r1, r0 fieldElement) {
	r1 = r >> dropBits
	r0 = r - r1<<dropBits

	const half = 1 << (dropBits - 1)
	if r0 > half {
		r0 = fieldSub(r0, 1<<dropBits)
		r1++
	}
	return r1, r0
}

// highBits extracts HighBits(r) for the given gamma2, used by both
// decompose and (indirectly) useHint. The two branches correspond to
// the two rounding schemes the spec calls the "1025/2^22" scheme
// (gamma2 = (q-1)/32) and the "11275/2^24" scheme (gamma2 = (q-1)/88).
// Implements FIPS 204 Algorithm 37.
func highBits(r fieldElement, gamma2 int) uint32 {
	r1 := int32((r + 127) >> 7)

	if gamma2 == (q-1)/32 {
		r1 = (r1*1025 + (1 << 21)) >> 22
		return uint32(r1) & 15
	}
	// gamma2 == (q-1)/88
	r1 = (r1*11275 + (1 << 23)) >> 24
	r1 ^= ((43 - r1) >> 31) & r1 // wrap r1 == 44 back to 0
	return uint32(r1)
}

// decompose splits r into r1 = HighBits(r) and the centered low-bits
// residual r0, such that r = r1*(2*gamma2) + r0 mod q with |r0| <=
// gamma2 (spec §4.3, with the boundary rule folded into highBits).
// Implements FIPS 204 Algorithm 36.
func decompose(r fieldElement, gamma2 int) (r1 uint32, r0 int32) {
	r1 = highBits(r, gamma2)
	r0 = int32(r) - int32(r1)*int32(gamma2)*2
	r0 -= ((int32(qMinus1Div2) - r0) >> 31) & q
	return r1, r0
}

// makeHint reports whether adding z to r changes its high bits,
// i.e. whether a verifier reconstructing r from r+z and the hint
// needs to adjust by one step. Implements FIPS 204 Algorithm 39.
func makeHint(z, r fieldElement, gamma2 int) fieldElement {
	if highBits(fieldAdd(r, z), gamma2) != highBits(r, gamma2) {
		return 1
	}
	return 0
}

// useHint reconstructs the high bits of r+z from r, the hint bit, and
// gamma2, without ever seeing z. Implements FIPS 204 Algorithm 40.
func useHint(hint, r fieldElement, gamma2 int) fieldElement {
	r1, r0 := decompose(r, gamma2)
	if hint == 0 {
		return fieldElement(r1)
	}

	if gamma2 == (q-1)/32 {
		if r0 > 0 {
			return fieldElement((r1 + 1) & 15)
		}
		return fieldElement((r1 - 1) & 15)
	}
	// gamma2 == (q-1)/88, modulus 44 for the high-bits range
	if r0 > 0 {
		if r1 == 43 {
			return 0
		}
		return fieldElement(r1 + 1)
	}
	if r1 == 0 {
		return 43
	}
	return fieldElement(r1 - 1)
}
