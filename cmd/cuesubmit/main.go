package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	setupLogger()

	parser := flags.NewNamedParser("cuesubmit", flags.Default)
	parser.AddCommand("compile", docCompile, docCompile, &optsCompile{})
	parser.AddCommand("submit", docSubmit, docSubmit, &optsSubmit{})
	parser.AddCommand("serve", docServe, docServe, &optsServe{})
	parser.AddCommand("ls", docLs, docLs, &optsLs{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			log.Error().Err(err).Msg("failed")
			os.Exit(1)
		}
	}
}
