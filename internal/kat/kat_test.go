package kat

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/latticecrypto/mldsa"
)

func TestParseRSPSingleVector(t *testing.T) {
	const rsp = `# ML-DSA-44

count = 0
seed = 061550234D158C5EC95595FE04EF7A25767F2E24CC2BC479D09D86DC9ABCFDE0
mlen = 33
msg = D81C4D8D734FCBFBEADE3D3F8A039FAA2A2C9957E835AD55B22E75BF57BB556AC8
pk = AABBCC
sk = DDEEFF
smlen = 10
sm = 00112233445566778899

`
	vectors, err := ParseRSP(strings.NewReader(rsp))
	if err != nil {
		t.Fatalf("ParseRSP: %v", err)
	}
	if len(vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(vectors))
	}
	v := vectors[0]
	if v.Count != 0 {
		t.Errorf("Count = %d, want 0", v.Count)
	}
	if len(v.Seed) != 32 {
		t.Errorf("Seed length = %d, want 32", len(v.Seed))
	}
	if v.MLen != 33 || len(v.Msg) != 33 {
		t.Errorf("MLen/len(Msg) = %d/%d, want 33/33", v.MLen, len(v.Msg))
	}
	if v.SMLen != 10 || len(v.SM) != 10 {
		t.Errorf("SMLen/len(SM) = %d/%d, want 10/10", v.SMLen, len(v.SM))
	}
	wantPK, _ := hex.DecodeString("AABBCC")
	if !bytes.Equal(v.PK, wantPK) {
		t.Errorf("PK = %x, want %x", v.PK, wantPK)
	}
}

func TestParseRSPMultipleVectorsSeparatedByBlankLines(t *testing.T) {
	const rsp = "count = 0\nseed = AA\nmlen = 1\nmsg = BB\npk = CC\nsk = DD\nsmlen = 1\nsm = EE\n\n" +
		"count = 1\nseed = AB\nmlen = 1\nmsg = BC\npk = CD\nsk = DE\nsmlen = 1\nsm = EF\n"
	vectors, err := ParseRSP(strings.NewReader(rsp))
	if err != nil {
		t.Fatalf("ParseRSP: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if vectors[0].Count != 0 || vectors[1].Count != 1 {
		t.Fatalf("counts = %d, %d, want 0, 1", vectors[0].Count, vectors[1].Count)
	}
}

func TestParseSeedBuffer(t *testing.T) {
	const buf = "0011223344556677889900112233445566778899001122334455667788990011\nAABB\n"
	seeds, err := ParseSeedBuffer(strings.NewReader(buf))
	if err != nil {
		t.Fatalf("ParseSeedBuffer: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want 2", len(seeds))
	}
}

// TestDeterministicKeyGenMatchesVectorShape exercises the wiring
// spec §6 describes: a KAT vector's seed drives mldsa.NewKeyFromSeed
// and the resulting key pair's encoded sizes must match what the
// vector's own pk/sk field lengths would be for that level, the
// property a real PQCsignKAT_Dilithium2.rsp vector is checked against.
func TestDeterministicKeyGenMatchesVectorShape(t *testing.T) {
	seed := make([]byte, mldsa.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		t.Fatal(err)
	}

	pub1, priv1, err := mldsa.NewKeyFromSeed(mldsa.L2, seed)
	if err != nil {
		t.Fatal(err)
	}
	pub2, priv2, err := mldsa.NewKeyFromSeed(mldsa.L2, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pub1.Bytes(), pub2.Bytes()) || !bytes.Equal(priv1.Bytes(), priv2.Bytes()) {
		t.Fatal("NewKeyFromSeed is not deterministic, which KAT reproduction depends on")
	}
	if len(pub1.Bytes()) != mldsa.PublicKeySize(mldsa.L2) {
		t.Errorf("public key size = %d, want %d", len(pub1.Bytes()), mldsa.PublicKeySize(mldsa.L2))
	}
	if len(priv1.Bytes()) != mldsa.PrivateKeySize(mldsa.L2) {
		t.Errorf("private key size = %d, want %d", len(priv1.Bytes()), mldsa.PrivateKeySize(mldsa.L2))
	}
}
