package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/voidshard/cuesubmit/pkg/structs"
)

const (
	docCompile = `Compile a job file & print each layer's command`
)

type optsCompile struct {
	optsGeneral

	Job  string `long:"job" short:"j" env:"JOB" description:"Path to job file (YAML or JSON)" required:"true"`
	Json bool   `long:"json" description:"Print the compiled job graph as JSON"`
}

func (c *optsCompile) Execute(args []string) error {
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	req, err := loadJob(c.Job)
	if err != nil {
		return err
	}

	graph, err := newSubmitter(cfg, nil).Compile(req)
	if err != nil {
		return err
	}
	return printGraph(os.Stdout, graph, c.Json)
}

func printGraph(w io.Writer, graph *structs.JobGraph, asJson bool) error {
	if asJson {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(graph)
	}
	for _, l := range graph.Layers {
		_, err := fmt.Fprintf(w, "%s [%s] %s: %s\n", l.Name, l.LayerType, l.Range, l.Command)
		if err != nil {
			return err
		}
	}
	return nil
}
