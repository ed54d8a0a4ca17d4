package main

import (
	"context"
	"fmt"

	"github.com/voidshard/cuesubmit/pkg/errors"
)

const (
	docSubmit = `Compile a job file & launch it`
)

type optsSubmit struct {
	optsGeneral
	optsLaunch

	Job string `long:"job" short:"j" env:"JOB" description:"Path to job file (YAML or JSON)" required:"true"`
}

func (c *optsSubmit) Execute(args []string) error {
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	if c.LaunchURL == "" {
		return fmt.Errorf("%w --launch-url is required to submit", errors.ErrInvalidArg)
	}
	l, err := c.launcher()
	if err != nil {
		return err
	}
	req, err := loadJob(c.Job)
	if err != nil {
		return err
	}

	handles, err := newSubmitter(cfg, l).Submit(context.Background(), req)
	if err != nil {
		return err
	}
	for _, h := range handles {
		fmt.Printf("%s %s\n", h.ID(), h.Name())
	}
	return nil
}
