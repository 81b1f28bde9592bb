package mldsa

// The scalar primitives below are direct transcriptions of spec
// §4.1's formulas (reduce32, caddq, mont_reduce operating on bare
// int32/int64, as the reference C code defines them). The rest of
// this package never calls them: fieldElement values are kept in
// standard [0, q) form after every operation (field.go's
// fieldReduceOnce), so there is no deferred-reduction pass that needs
// a general-purpose reduce32/caddq the way the reference's lazily
// reduced 32-bit accumulators do. They exist because spec §8 lists
// caddq/reduce32 as independently testable invariants; keeping them
// as small, separately verifiable functions is cheaper and clearer
// than trying to prove the same bounds indirectly through
// fieldReduceOnce's uint32 arithmetic.

// caddq32 conditionally adds q to a, branch-free, for any a whose sign
// bit correctly reflects whether it is negative.
func caddq32(a int32) int32 {
	return a + ((a >> 31) & q)
}

// reduce32 reduces a into the centered range (-6283009, 6283008] for
// |a| <= 2^31 - 2^22 - 1, per spec §4.1.
func reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*q
}

// montReduceRef is spec §4.1's mont_reduce: t = (a mod 2^32)*qInv mod
// 2^32, r = (a - t*q) >> 32. It is a standalone, subtract-based
// transcription kept alongside (not in place of) fieldReduce's
// internal add-based Montgomery step, which uses qNegInv instead; the
// two constants and formulas are not interchangeable.
func montReduceRef(a int64) int32 {
	t := int32(uint32(a) * qInv)
	return int32((a - int64(t)*q) >> 32)
}
