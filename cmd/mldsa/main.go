// Command mldsa is a thin CLI around the mldsa package: key
// generation, signing, verification, and running PQCsignKAT .rsp
// fixtures against the core. None of this logic belongs in the core itself
// (spec §6 names the CLI an external collaborator); this file only
// wires flags, logging, and config to the library's exported API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var log zerolog.Logger

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	app := &cli.App{
		Name:                 "mldsa",
		Usage:                "generate, sign, and verify ML-DSA (FIPS 204 / Dilithium) keys and signatures",
		UsageText:            "mldsa [global options] command [command options]",
		Version:              "0.1.0",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file (see Config in config.go)",
			},
			&cli.StringFlag{
				Name:  "loglevel",
				Usage: "debug, info, warn, or error",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("loglevel"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid loglevel: %v", err), 1)
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand,
			signCommand,
			verifyCommand,
			katCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("mldsa failed")
		os.Exit(1)
	}
}
