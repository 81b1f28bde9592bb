// Package kat parses the Known-Answer-Test fixture formats ML-DSA
// conformance is checked against: the classic NIST PQCsignKAT .rsp
// text format and the ACVP gzip+JSON format. Neither format is part
// of the signature core itself (spec §6 names this the testing
// boundary); this package only decodes fixtures into plain Go values
// for a caller to feed into the core's Keygen/Sign/Verify.
package kat

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vector is one test case from a PQCsignKAT_Dilithium{2,3,5}.rsp file:
// a seed that reproduces (pk, sk) via deterministic KeyGen, a message,
// and the expected signed message sm = sig || msg.
type Vector struct {
	Count int
	Seed  []byte
	MLen  int
	Msg   []byte
	PK    []byte
	SK    []byte
	SMLen int
	SM    []byte
}

// ParseRSP reads a PQCsignKAT_Dilithium{2,3,5}.rsp file, as produced
// by the NIST reference implementation's PQCgenKAT_sign driver.
// Implements the .rsp half of spec §6's KAT harness contract.
func ParseRSP(r io.Reader) ([]Vector, error) {
	var vectors []Vector
	var cur Vector
	have := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if have {
				vectors = append(vectors, cur)
				cur = Vector{}
				have = false
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := splitKATLine(line)
		if err != nil {
			return nil, err
		}
		have = true

		switch key {
		case "count":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.Wrapf(err, "kat: bad count %q", value)
			}
			cur.Count = n
		case "seed":
			cur.Seed, err = hex.DecodeString(value)
		case "mlen":
			cur.MLen, err = strconv.Atoi(value)
		case "msg":
			cur.Msg, err = hex.DecodeString(value)
		case "pk":
			cur.PK, err = hex.DecodeString(value)
		case "sk":
			cur.SK, err = hex.DecodeString(value)
		case "smlen":
			cur.SMLen, err = strconv.Atoi(value)
		case "sm":
			cur.SM, err = hex.DecodeString(value)
		default:
			// Unknown fields are ignored rather than rejected ('#'
			// comment lines, such as the leading banner, are skipped above).
		}
		if err != nil {
			return nil, errors.Wrapf(err, "kat: parsing field %q", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kat: scanning rsp file")
	}
	if have {
		vectors = append(vectors, cur)
	}
	return vectors, nil
}

// ParseRSPFile opens and parses path as a PQCsignKAT .rsp file.
func ParseRSPFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kat: opening rsp file")
	}
	defer f.Close()
	return ParseRSP(f)
}

// ParseSeedBuffer reads a SeedBuffer_Dilithium file: one hex-encoded
// 32-byte seed per line, used to reproduce KeyGen KAT vectors
// independently of the .rsp file's own embedded seed field.
func ParseSeedBuffer(r io.Reader) ([][]byte, error) {
	var seeds [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seed, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "kat: decoding seed line %q", line)
		}
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kat: scanning seed buffer")
	}
	return seeds, nil
}

func splitKATLine(line string) (key, value string, err error) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("kat: malformed line %q", line)
	}
	return strings.ToLower(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1]), nil
}

// hexBytes is a JSON-unmarshaling helper for ACVP's hex-string fields.
// Grounded on the teacher's acvp_test.go helper of the same name.
type hexBytes []byte

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

// ReadGzipJSON decompresses a gzip-compressed ACVP prompt/response
// file and returns its raw bytes, ready for json.Unmarshal into one
// of the group types below. Grounded on the teacher's acvp_test.go
// readGzip helper.
func ReadGzipJSON(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kat: opening acvp fixture")
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "kat: opening gzip stream")
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "kat: reading gzip stream")
	}
	return buf.Bytes(), nil
}

// KeyGenPrompt and KeyGenResult mirror the ACVP ML-DSA keyGen test
// group schema: a seed per test case in the prompt, and the expected
// (pk, sk) pair per test case in the results.
type KeyGenPrompt struct {
	TestGroups []struct {
		TgID         int    `json:"tgId"`
		ParameterSet string `json:"parameterSet"`
		Tests        []struct {
			TcID int      `json:"tcId"`
			Seed hexBytes `json:"seed"`
		} `json:"tests"`
	} `json:"testGroups"`
}

type KeyGenResult struct {
	TestGroups []struct {
		TgID  int `json:"tgId"`
		Tests []struct {
			TcID int      `json:"tcId"`
			PK   hexBytes `json:"pk"`
			SK   hexBytes `json:"sk"`
		} `json:"tests"`
	} `json:"testGroups"`
}

// SigGenPrompt and SigGenResult mirror the ACVP ML-DSA sigGen schema.
type SigGenPrompt struct {
	TestGroups []struct {
		TgID         int    `json:"tgId"`
		ParameterSet string `json:"parameterSet"`
		Deterministic bool  `json:"deterministic"`
		Tests        []struct {
			TcID    int      `json:"tcId"`
			SK      hexBytes `json:"sk"`
			Message hexBytes `json:"message"`
			Context hexBytes `json:"context"`
		} `json:"tests"`
	} `json:"testGroups"`
}

type SigGenResult struct {
	TestGroups []struct {
		TgID  int `json:"tgId"`
		Tests []struct {
			TcID      int      `json:"tcId"`
			Signature hexBytes `json:"signature"`
		} `json:"tests"`
	} `json:"testGroups"`
}

// SigVerPrompt and SigVerResult mirror the ACVP ML-DSA sigVer schema.
type SigVerPrompt struct {
	TestGroups []struct {
		TgID         int    `json:"tgId"`
		ParameterSet string `json:"parameterSet"`
		Tests        []struct {
			TcID      int      `json:"tcId"`
			PK        hexBytes `json:"pk"`
			Message   hexBytes `json:"message"`
			Context   hexBytes `json:"context"`
			Signature hexBytes `json:"signature"`
		} `json:"tests"`
	} `json:"testGroups"`
}

type SigVerResult struct {
	TestGroups []struct {
		TgID  int `json:"tgId"`
		Tests []struct {
			TcID     int  `json:"tcId"`
			TestPass bool `json:"testPassed"`
		} `json:"tests"`
	} `json:"testGroups"`
}
