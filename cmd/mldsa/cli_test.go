package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp() *cli.App {
	return &cli.App{
		Name: "mldsa",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.StringFlag{Name: "loglevel", Value: "error"},
		},
		Before: func(c *cli.Context) error {
			log = zerolog.Nop()
			return nil
		},
		// Commands report failure through cli.Exit; without a handler
		// urfave/cli would call os.Exit instead of returning the error.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands:       []*cli.Command{keygenCommand, signCommand, verifyCommand, katCommand},
	}
}

func TestKeygenSignVerifyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pubPath := filepath.Join(dir, "pub.hex")
	privPath := filepath.Join(dir, "priv.hex")
	sigPath := filepath.Join(dir, "sig.hex")
	msgPath := filepath.Join(dir, "msg.txt")

	require.NoError(t, os.WriteFile(msgPath, []byte("hello from the cli test"), 0o600))

	app := newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "keygen", "--level", "2", "--pub-out", pubPath, "--priv-out", privPath,
	}))

	app = newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "sign", "--level", "2", "--priv", privPath, "--sig-out", sigPath, msgPath,
	}))

	app = newTestApp()
	err := app.Run([]string{
		"mldsa", "verify", "--level", "2", "--pub", pubPath, "--sig", sigPath, msgPath,
	})
	require.NoError(t, err)
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	dir := t.TempDir()
	pubPath := filepath.Join(dir, "pub.hex")
	privPath := filepath.Join(dir, "priv.hex")
	sigPath := filepath.Join(dir, "sig.hex")
	msgPath := filepath.Join(dir, "msg.txt")
	otherPath := filepath.Join(dir, "other.txt")

	require.NoError(t, os.WriteFile(msgPath, []byte("original message"), 0o600))
	require.NoError(t, os.WriteFile(otherPath, []byte("tampered message"), 0o600))

	app := newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "keygen", "--level", "2", "--pub-out", pubPath, "--priv-out", privPath,
	}))

	app = newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "sign", "--level", "2", "--priv", privPath, "--sig-out", sigPath, msgPath,
	}))

	app = newTestApp()
	err := app.Run([]string{
		"mldsa", "verify", "--level", "2", "--pub", pubPath, "--sig", sigPath, otherPath,
	})
	require.Error(t, err)
}

func TestKeygenIsDeterministicWithSeed(t *testing.T) {
	dir := t.TempDir()
	seed := strings.Repeat("ab", 32)

	pub1 := filepath.Join(dir, "pub1.hex")
	priv1 := filepath.Join(dir, "priv1.hex")
	pub2 := filepath.Join(dir, "pub2.hex")
	priv2 := filepath.Join(dir, "priv2.hex")

	app := newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "keygen", "--level", "3", "--seed", seed, "--pub-out", pub1, "--priv-out", priv1,
	}))
	app = newTestApp()
	require.NoError(t, app.Run([]string{
		"mldsa", "keygen", "--level", "3", "--seed", seed, "--pub-out", pub2, "--priv-out", priv2,
	}))

	b1, err := os.ReadFile(pub1)
	require.NoError(t, err)
	b2, err := os.ReadFile(pub2)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}
