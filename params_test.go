package mldsa

import "testing"

func TestParamsForUnknownLevel(t *testing.T) {
	if _, err := paramsFor(Level(99)); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSizesMatchKnownFIPS204Values(t *testing.T) {
	cases := []struct {
		lvl     Level
		pubLen  int
		privLen int
		sigLen  int
	}{
		{L2, 1312, 2528, 2420},
		{L3, 1952, 4000, 3293},
		{L5, 2592, 4864, 4595},
	}
	for _, c := range cases {
		if got := PublicKeySize(c.lvl); got != c.pubLen {
			t.Errorf("%v: public key size = %d, want %d", c.lvl, got, c.pubLen)
		}
		if got := PrivateKeySize(c.lvl); got != c.privLen {
			t.Errorf("%v: private key size = %d, want %d", c.lvl, got, c.privLen)
		}
		if got := SignatureSize(c.lvl); got != c.sigLen {
			t.Errorf("%v: signature size = %d, want %d", c.lvl, got, c.sigLen)
		}
	}
}

func TestLevelString(t *testing.T) {
	if L2.String() != "ML-DSA-44" || L3.String() != "ML-DSA-65" || L5.String() != "ML-DSA-87" {
		t.Fatal("unexpected level names")
	}
	if Level(42).String() != "Level(42)" {
		t.Fatal("unexpected fallback level name")
	}
}
