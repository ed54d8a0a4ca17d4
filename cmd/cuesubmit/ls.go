package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/voidshard/cuesubmit/pkg/api/http/common"
	"github.com/voidshard/cuesubmit/pkg/fileseq"
)

const (
	docLs = `List directories with numbered files collapsed into sequences`
)

type optsLs struct {
	optsGeneral

	Expand bool `long:"expand" short:"e" description:"Print every path under each sequence"`

	Args struct {
		Dirs []string `positional-arg-name:"DIR"`
	} `positional-args:"yes"`
}

func (c *optsLs) Execute(args []string) error {
	if _, err := c.setup(); err != nil {
		return err
	}
	dirs := c.Args.Dirs
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		seqs, err := listSequences(dir)
		if err != nil {
			return err
		}
		printSequences(os.Stdout, seqs, c.Expand)
	}
	return nil
}

// listSequences groups the files (not directories) directly under dir, sorted by label.
func listSequences(dir string) ([]*common.Sequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	sizes := map[string]int64{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		paths = append(paths, p)

		info, err := e.Info()
		if err != nil {
			log.Debug().Err(err).Str("path", p).Msg("unable to stat")
			continue
		}
		sizes[p] = info.Size()
	}
	log.Debug().Str("dir", dir).Int("files", len(paths)).Msg("listed directory")

	out := []*common.Sequence{}
	for _, seq := range fileseq.GroupIntoSequences(paths) {
		desc, err := common.NewSequence(seq, sizes)
		if err != nil {
			return nil, err
		}
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func printSequences(w io.Writer, seqs []*common.Sequence, expand bool) {
	for _, s := range seqs {
		fmt.Fprintf(w, "%-8s %s\n", s.SizeLabel, s.Label)
		if !expand || len(s.Paths) < 2 {
			continue
		}
		for _, p := range s.Paths {
			fmt.Fprintf(w, "         %s\n", p)
		}
	}
}
