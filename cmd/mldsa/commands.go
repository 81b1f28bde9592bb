package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/latticecrypto/mldsa"
	"github.com/latticecrypto/mldsa/internal/kat"
)

func levelFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "level",
		Usage: "ML-DSA security level: 2, 3, or 5",
		Value: 3,
	}
}

func resolveLevel(c *cli.Context) (mldsa.Level, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return 0, err
	}
	n := cfg.Level
	if c.IsSet("level") {
		n = c.Int("level")
	}
	return levelFromInt(n)
}

var keygenCommand = &cli.Command{
	Name:      "keygen",
	Usage:     "generate an ML-DSA key pair",
	ArgsUsage: "",
	Flags: []cli.Flag{
		levelFlag(),
		&cli.StringFlag{Name: "pub-out", Usage: "write the public key to this file (hex)", Value: "mldsa.pub"},
		&cli.StringFlag{Name: "priv-out", Usage: "write the private key to this file (hex)", Value: "mldsa.key"},
		&cli.StringFlag{Name: "seed", Usage: "32-byte hex seed for deterministic key generation"},
	},
	Action: func(c *cli.Context) error {
		lvl, err := resolveLevel(c)
		if err != nil {
			return err
		}

		var pub *mldsa.PublicKey
		var priv *mldsa.PrivateKey
		if seedHex := c.String("seed"); seedHex != "" {
			seed, err := hex.DecodeString(seedHex)
			if err != nil {
				return errors.Wrap(err, "decoding --seed")
			}
			pub, priv, err = mldsa.NewKeyFromSeed(lvl, seed)
			if err != nil {
				return errors.Wrap(err, "generating key from seed")
			}
		} else {
			pub, priv, err = mldsa.GenerateKey(lvl, rand.Reader)
			if err != nil {
				return errors.Wrap(err, "generating key")
			}
		}

		if err := writeHexFile(c.String("pub-out"), pub.Bytes()); err != nil {
			return err
		}
		if err := writeHexFile(c.String("priv-out"), priv.Bytes()); err != nil {
			return err
		}
		log.Info().
			Str("level", lvl.String()).
			Str("pub", c.String("pub-out")).
			Str("priv", c.String("priv-out")).
			Msg("generated key pair")
		return nil
	},
}

var signCommand = &cli.Command{
	Name:      "sign",
	Usage:     "sign a message with an ML-DSA private key",
	ArgsUsage: "<message-file>",
	Flags: []cli.Flag{
		levelFlag(),
		&cli.StringFlag{Name: "priv", Usage: "private key file (hex)", Value: "mldsa.key"},
		&cli.StringFlag{Name: "context", Usage: "optional context string"},
		&cli.StringFlag{Name: "sig-out", Usage: "write the signature to this file (hex)", Value: "mldsa.sig"},
	},
	Action: func(c *cli.Context) error {
		lvl, err := resolveLevel(c)
		if err != nil {
			return err
		}
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one message-file argument", 1)
		}

		message, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "reading message file")
		}
		skBytes, err := readHexFile(c.String("priv"))
		if err != nil {
			return err
		}
		priv, err := mldsa.NewPrivateKey(lvl, skBytes)
		if err != nil {
			return errors.Wrap(err, "parsing private key")
		}

		sig, err := priv.SignWithContext(rand.Reader, message, []byte(c.String("context")))
		if err != nil {
			return errors.Wrap(err, "signing")
		}
		if err := writeHexFile(c.String("sig-out"), sig); err != nil {
			return err
		}
		log.Info().Str("sig", c.String("sig-out")).Int("bytes", len(sig)).Msg("signed message")
		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "verify an ML-DSA signature",
	ArgsUsage: "<message-file>",
	Flags: []cli.Flag{
		levelFlag(),
		&cli.StringFlag{Name: "pub", Usage: "public key file (hex)", Value: "mldsa.pub"},
		&cli.StringFlag{Name: "sig", Usage: "signature file (hex)", Value: "mldsa.sig"},
		&cli.StringFlag{Name: "context", Usage: "optional context string"},
	},
	Action: func(c *cli.Context) error {
		lvl, err := resolveLevel(c)
		if err != nil {
			return err
		}
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one message-file argument", 1)
		}

		message, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "reading message file")
		}
		pkBytes, err := readHexFile(c.String("pub"))
		if err != nil {
			return err
		}
		sig, err := readHexFile(c.String("sig"))
		if err != nil {
			return err
		}
		pub, err := mldsa.NewPublicKey(lvl, pkBytes)
		if err != nil {
			return errors.Wrap(err, "parsing public key")
		}

		ok := pub.Verify(sig, message, []byte(c.String("context")))
		log.Info().Bool("ok", ok).Msg("verification result")
		if !ok {
			return cli.Exit("signature is invalid", 1)
		}
		fmt.Println("OK")
		return nil
	},
}

var katCommand = &cli.Command{
	Name:      "kat",
	Usage:     "replay a PQCsignKAT_Dilithium*.rsp fixture against the core",
	ArgsUsage: "<rsp-file>",
	Flags:     []cli.Flag{levelFlag()},
	Action: func(c *cli.Context) error {
		lvl, err := resolveLevel(c)
		if err != nil {
			return err
		}
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one rsp-file argument", 1)
		}

		vectors, err := kat.ParseRSPFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "parsing rsp file")
		}

		failures := 0
		for _, v := range vectors {
			pub, priv, err := mldsa.NewKeyFromSeed(lvl, v.Seed)
			if err != nil {
				log.Error().Int("count", v.Count).Err(err).Msg("keygen failed")
				failures++
				continue
			}
			if !bytesEqual(pub.Bytes(), v.PK) || !bytesEqual(priv.Bytes(), v.SK) {
				log.Error().Int("count", v.Count).Msg("keygen mismatch against KAT vector")
				failures++
				continue
			}

			sig, err := mldsa.SignBytes(lvl, rand.Reader, priv.Bytes(), v.Msg, nil)
			if err != nil {
				log.Error().Int("count", v.Count).Err(err).Msg("sign failed")
				failures++
				continue
			}
			wantSig := v.SM[:len(v.SM)-len(v.Msg)]
			if !bytesEqual(sig, wantSig) {
				log.Error().Int("count", v.Count).Msg("signature mismatch against KAT vector")
				failures++
				continue
			}

			log.Debug().Int("count", v.Count).Msg("vector passed")
		}

		log.Info().Int("total", len(vectors)).Int("failures", failures).Msg("kat run complete")
		if failures > 0 {
			return cli.Exit(fmt.Sprintf("%d of %d vectors failed", failures, len(vectors)), 1)
		}
		return nil
	},
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeHexFile(path string, data []byte) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(data)), 0o600); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func readHexFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	data, err := hex.DecodeString(string(trimNewline(raw)))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding hex in %s", path)
	}
	return data, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
