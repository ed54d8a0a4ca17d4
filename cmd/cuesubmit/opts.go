package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/voidshard/cuesubmit/internal/utils"
	"github.com/voidshard/cuesubmit/pkg/api/http/client"
	"github.com/voidshard/cuesubmit/pkg/compile"
	"github.com/voidshard/cuesubmit/pkg/config"
	"github.com/voidshard/cuesubmit/pkg/structs"
	"github.com/voidshard/cuesubmit/pkg/submit"
)

type optsGeneral struct {
	Config string `long:"config" env:"CUESUBMIT_CONFIG_FILE" description:"Path to YAML config file"`
	Debug  bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// setup applies logging flags & loads the config file.
func (o *optsGeneral) setup() (*config.Config, error) {
	if o.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return config.Load(o.Config)
}

type optsLaunch struct {
	LaunchURL string `long:"launch-url" env:"LAUNCH_URL" description:"URL of the service jobs are launched on"`
	CACert    string `long:"launch-ca" env:"LAUNCH_CA" description:"CA cert used to verify the launch service"`
	Cert      string `long:"launch-cert" env:"LAUNCH_CERT" description:"Client cert presented to the launch service"`
	Key       string `long:"launch-key" env:"LAUNCH_KEY" description:"Client key presented to the launch service"`
}

// launcher returns a launch client, or nil if no URL is set.
func (o *optsLaunch) launcher() (submit.Launcher, error) {
	if o.LaunchURL == "" {
		return nil, nil
	}
	tlsCfg, err := utils.ClientTLSConfig(o.CACert, o.Cert, o.Key)
	if err != nil {
		return nil, err
	}
	c, err := client.New(o.LaunchURL, tlsCfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newSubmitter builds a Submitter from the config. The launcher may be nil.
func newSubmitter(cfg *config.Config, l submit.Launcher) *submit.Submitter {
	return submit.NewSubmitter(l, compile.New(cfg.CompileOptions()), cfg.Table())
}

// loadJob reads a job file. JSON is valid YAML, so either is accepted.
func loadJob(path string) (*structs.JobRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("no job file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	req := &structs.JobRequest{}
	err = yaml.Unmarshal(data, req)
	if err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	return req, nil
}
