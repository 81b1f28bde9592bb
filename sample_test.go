package mldsa

import (
	"encoding/hex"
	"testing"
)

// Spot checks against the well-known empty-input SHAKE digests (spec
// §8 scenario 7), independent of any Dilithium-specific framing.
func TestShakeEmptyInputVectors(t *testing.T) {
	want128, _ := hex.DecodeString("7f9c2ba4e88f827d616045507605853e")
	got128 := make([]byte, len(want128))
	shake128Sum(got128, nil)
	if hex.EncodeToString(got128) != hex.EncodeToString(want128) {
		t.Errorf("SHAKE128(\"\") = %x, want %x", got128, want128)
	}

	want256, _ := hex.DecodeString("46b9dd2b0ba88d13233b3feb743eeb24")
	got256 := make([]byte, len(want256))
	shake256Sum(got256, nil)
	if hex.EncodeToString(got256) != hex.EncodeToString(want256) {
		t.Errorf("SHAKE256(\"\") = %x, want %x", got256, want256)
	}
}

func TestSampleBoundedPolyStaysInRange(t *testing.T) {
	seed := make([]byte, crhBytes)
	for i := range seed {
		seed[i] = byte(i)
	}
	for _, eta := range []int{2, 4} {
		f := sampleBoundedPoly(seed, eta, 0)
		for i, c := range f {
			n := infinityNorm(c)
			if n > uint32(eta) {
				t.Fatalf("eta=%d: coefficient %d has norm %d > eta", eta, i, n)
			}
		}
	}
}

func TestSampleChallengeHasExactlyTauNonzeroCoefficients(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(2 * i)
	}
	for _, tau := range []int{39, 49, 60} {
		c := sampleChallenge(seed, tau)
		count := 0
		for _, v := range c {
			if v != 0 {
				if v != 1 && v != q-1 {
					t.Fatalf("tau=%d: nonzero coefficient %d is not +-1", tau, v)
				}
				count++
			}
		}
		if count != tau {
			t.Fatalf("tau=%d: got %d nonzero coefficients, want %d", tau, count, tau)
		}
	}
}

func TestExpandMaskStaysInRange(t *testing.T) {
	seed := make([]byte, crhBytes)
	for _, tc := range []struct{ bits int }{{17}, {19}} {
		y := expandMask(seed, 0, tc.bits)
		gamma1 := 1 << tc.bits
		for i, c := range y {
			centered := int32(c)
			if centered > qMinus1Div2 {
				centered -= q
			}
			if centered > int32(gamma1) || centered <= -int32(gamma1) {
				t.Fatalf("gamma1=2^%d: coefficient %d = %d out of range", tc.bits, i, centered)
			}
		}
	}
}

func TestExpandADeterministicAndSizedCorrectly(t *testing.T) {
	p, err := paramsFor(L3)
	if err != nil {
		t.Fatal(err)
	}
	rho := make([]byte, SeedSize)
	for i := range rho {
		rho[i] = byte(i * 3)
	}
	a1 := expandA(p, rho)
	a2 := expandA(p, rho)
	if len(a1) != p.k*p.l {
		t.Fatalf("expandA returned %d entries, want %d", len(a1), p.k*p.l)
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("expandA is not deterministic at entry %d", i)
		}
	}
}
