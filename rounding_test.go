package mldsa

import "testing"

func TestPower2RoundReconstructs(t *testing.T) {
	for r := fieldElement(0); r < q; r += 997 {
		r1, r0 := power2Round(r)
		recon := fieldAdd(fieldElement(uint32(r1)<<dropBits), r0)
		if recon != r {
			t.Fatalf("power2Round(%d) = (%d,%d), reconstructs to %d", r, r1, r0, recon)
		}

		centered := int32(r0)
		if centered > qMinus1Div2 {
			centered -= q
		}
		if centered > (1<<(dropBits-1)) || centered <= -(1<<(dropBits-1)) {
			t.Fatalf("power2Round(%d) r0 out of bounds: %d", r, centered)
		}
	}
}

func TestDecomposeReconstructs(t *testing.T) {
	for _, gamma2 := range []int{(q - 1) / 32, (q - 1) / 88} {
		for r := fieldElement(0); r < q; r += 709 {
			r1, r0 := decompose(r, gamma2)
			recon := int32(r1)*int32(gamma2)*2 + r0
			recon = ((recon % q) + q) % q
			if fieldElement(recon) != r {
				t.Fatalf("gamma2=%d: decompose(%d) = (%d,%d) reconstructs to %d", gamma2, r, r1, r0, recon)
			}
			if r0 > int32(gamma2) || r0 < -int32(gamma2) {
				t.Fatalf("gamma2=%d: decompose(%d) r0=%d out of bounds", gamma2, r, r0)
			}
		}
	}
}

func TestMakeHintUseHintRoundTrip(t *testing.T) {
	for _, gamma2 := range []int{(q - 1) / 32, (q - 1) / 88} {
		for r := fieldElement(1000); r < q; r += 131071 {
			for _, z := range []fieldElement{0, 1, q - 1, fieldElement(gamma2)} {
				hint := makeHint(z, r, gamma2)
				want := highBits(fieldAdd(r, z), gamma2)
				got := useHint(hint, r, gamma2)
				if uint32(got) != want {
					t.Fatalf("gamma2=%d r=%d z=%d: useHint=%d, want %d", gamma2, r, z, got, want)
				}
			}
		}
	}
}

func TestMakeHintIsZeroWhenHighBitsUnchanged(t *testing.T) {
	gamma2 := (q - 1) / 32
	r := fieldElement(1000)
	if hint := makeHint(0, r, gamma2); hint != 0 {
		t.Fatalf("makeHint(0, r, gamma2) = %d, want 0", hint)
	}
}
