package main

import (
	"github.com/rs/zerolog/log"

	"github.com/voidshard/cuesubmit/internal/utils"
	"github.com/voidshard/cuesubmit/pkg/api/http/server"
)

const (
	docServe = `Run the HTTP API server`
)

type optsServe struct {
	optsGeneral
	optsLaunch

	Addr     string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
	TLSCert  string `long:"cert" env:"CERT" description:"Path to TLS certificate"`
	TLSKey   string `long:"key" env:"KEY" description:"Path to TLS key"`
	ClientCA string `long:"client-ca" env:"CLIENT_CA" description:"Require client certs signed by this CA"`
}

func (c *optsServe) Execute(args []string) error {
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	l, err := c.launcher()
	if err != nil {
		return err
	}
	if l == nil {
		log.Warn().Msg("no --launch-url given, jobs can be compiled but not launched")
	}
	tlsCfg, err := utils.ServerTLSConfig(c.ClientCA, c.TLSCert, c.TLSKey)
	if err != nil {
		return err
	}

	s := server.NewServer(c.Addr, cfg.UIName, newSubmitter(cfg, l), tlsCfg, c.Debug)
	return s.ServeForever()
}
