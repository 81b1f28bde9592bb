package mldsa

import "errors"

// This file implements every bit-packing codec as a generic,
// width-parameterized encoder/decoder pair (spec §4.7, Design Notes
// §9 "Packing as codec pairs"). Rather than hand-unrolling one
// function per coefficient width like the teacher does (packT1,
// packEta2, packEta4, packZ17, packZ19, packW1_4, packW1_6 as separate
// near-identical functions), every shape below is expressed as a
// small transform applied coefficient-wise, followed by one shared
// little-endian bit-stream packer/unpacker.

// packBits serializes exactly polyN values, each using the low
// `bits` bits of the corresponding uint32, into a little-endian bit
// stream. polyN*bits is always a whole number of bytes for every
// width FIPS 204 uses (3,4,6,10,13,18,20).
func packBits(vals [polyN]uint32, bits int) []byte {
	out := make([]byte, polyN*bits/8)
	var acc uint64
	accBits := 0
	pos := 0
	for _, v := range vals {
		acc |= uint64(v) << accBits
		accBits += bits
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}
	return out
}

// unpackBits is packBits's inverse: it reads polyN values of `bits`
// bits each from a little-endian bit stream.
func unpackBits(b []byte, bits int) [polyN]uint32 {
	var vals [polyN]uint32
	var acc uint64
	accBits := 0
	pos := 0
	mask := uint64(1)<<uint(bits) - 1
	for i := range vals {
		for accBits < bits {
			acc |= uint64(b[pos]) << accBits
			pos++
			accBits += 8
		}
		vals[i] = uint32(acc & mask)
		acc >>= uint(bits)
		accBits -= bits
	}
	return vals
}

// packT1 encodes a polynomial of unsigned 10-bit coefficients (the
// high bits of t, already in [0, 2^10)).
func packT1(f ringElement) []byte {
	var vals [polyN]uint32
	for i, c := range f {
		vals[i] = uint32(c)
	}
	return packBits(vals, 10)
}

func unpackT1(b []byte) ringElement {
	vals := unpackBits(b, 10)
	var f ringElement
	for i, v := range vals {
		f[i] = fieldElement(v)
	}
	return f
}

// packT0 encodes t0, centered at 2^(D-1), as unsigned 13-bit values
// via the offset encoding value = 2^(D-1) - c.
func packT0(f ringElement) []byte {
	const center = 1 << (dropBits - 1)
	var vals [polyN]uint32
	for i, c := range f {
		vals[i] = uint32(fieldSub(center, c))
	}
	return packBits(vals, 13)
}

func unpackT0(b []byte) ringElement {
	const center = 1 << (dropBits - 1)
	vals := unpackBits(b, 13)
	var f ringElement
	for i, v := range vals {
		f[i] = fieldSub(center, fieldElement(v))
	}
	return f
}

// etaBits returns the packed coefficient width for a given eta.
func etaBits(eta int) int {
	if eta == 2 {
		return 3
	}
	return 4
}

// packEta encodes a secret-vector polynomial with coefficients in
// [-eta, eta] via value = eta - c.
func packEta(f ringElement, eta int) []byte {
	var vals [polyN]uint32
	for i, c := range f {
		vals[i] = uint32(fieldSub(fieldElement(eta), c))
	}
	return packBits(vals, etaBits(eta))
}

// unpackEta decodes a secret-vector polynomial, rejecting any encoded
// value outside [0, 2*eta] as a corrupt/malicious encoding.
func unpackEta(b []byte, eta int) (ringElement, error) {
	vals := unpackBits(b, etaBits(eta))
	var f ringElement
	for i, v := range vals {
		if v > uint32(2*eta) {
			return ringElement{}, errors.New("mldsa: invalid eta encoding")
		}
		f[i] = fieldSub(fieldElement(eta), fieldElement(v))
	}
	return f, nil
}

// unpackGamma1 decodes a mask/response polynomial packed with
// value = gamma1 - c, used both by expandMask (sampling y) and by
// the signature's z decoder.
func unpackGamma1(b []byte, f *ringElement, gamma1 uint32, bits int) {
	vals := unpackBits(b, bits)
	for i, v := range vals {
		f[i] = fieldSub(fieldElement(gamma1), fieldElement(v))
	}
}

// packZ encodes the signature response z, centered at gamma1.
func packZ(f ringElement, gamma1 int, bits int) []byte {
	var vals [polyN]uint32
	for i, c := range f {
		vals[i] = uint32(fieldSub(fieldElement(gamma1), c))
	}
	return packBits(vals, bits)
}

// unpackZ decodes a z polynomial packed with packZ.
func unpackZ(b []byte, gamma1 int, bits int) ringElement {
	var f ringElement
	unpackGamma1(b, &f, uint32(gamma1), bits)
	return f
}

// w1Bits returns the packed coefficient width for a given gamma2.
func w1Bits(gamma2 int) int {
	if gamma2 == (q-1)/32 {
		return 4
	}
	return 6
}

// packW1 encodes the high-bits commitment w1, an unsigned small value
// with no offset needed (it is already in [0, 2*gamma2-range)).
func packW1(f ringElement, gamma2 int) []byte {
	var vals [polyN]uint32
	for i, c := range f {
		vals[i] = uint32(c)
	}
	return packBits(vals, w1Bits(gamma2))
}

// packHint encodes the hint vector h as the ascending list of set
// coefficient positions per polynomial, followed by cumulative counts
// (spec §4.7). Total length is omega + k bytes.
func packHint(hints []ringElement, omega int) []byte {
	k := len(hints)
	b := make([]byte, omega+k)
	idx := 0
	for i := 0; i < k; i++ {
		for j := 0; j < polyN; j++ {
			if hints[i][j] != 0 {
				b[idx] = byte(j)
				idx++
			}
		}
		b[omega+i] = byte(idx)
	}
	return b
}

// unpackHint decodes and validates the hint vector: cumulative counts
// must be monotone non-decreasing and bounded by omega, indices
// within one polynomial's slice must be strictly increasing, and
// unused trailing slots must be zero. Any violation is rejected
// without ever being distinguished from other verification failures
// by the caller (spec §7, InvalidSignatureEncoding collapses into the
// single public "invalid signature" verdict).
func unpackHint(b []byte, hints []ringElement, omega int) bool {
	cursor := 0
	for row := range hints {
		end := int(b[omega+row])
		if end < cursor || end > omega {
			return false
		}
		rowStart := cursor
		for cursor < end {
			coeff := b[cursor]
			if cursor > rowStart && b[cursor-1] >= coeff {
				return false // positions within a row must strictly increase
			}
			hints[row][coeff] = 1
			cursor++
		}
	}
	for ; cursor < omega; cursor++ {
		if b[cursor] != 0 {
			return false // unused tail must be zero-padded
		}
	}
	return true
}
