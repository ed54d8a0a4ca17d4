package submit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/voidshard/cuesubmit/pkg/compile"
	"github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

// Submitter turns job requests into job graphs & launches them.
type Submitter struct {
	launcher Launcher
	compiler *compile.Compiler
	table    *structs.DefaultsTable
}

// NewSubmitter returns a Submitter. The launcher may be nil, in which case jobs can
// be compiled but not submitted.
func NewSubmitter(launcher Launcher, compiler *compile.Compiler, table *structs.DefaultsTable) *Submitter {
	if compiler == nil {
		compiler = compile.New(nil)
	}
	if table == nil {
		table = structs.DefaultsTableDefault()
	}
	return &Submitter{launcher: launcher, compiler: compiler, table: table}
}

// Table returns the defaults new layers are given.
func (s *Submitter) Table() *structs.DefaultsTable {
	return s.table
}

// Compile assembles the request without launching it.
func (s *Submitter) Compile(req *structs.JobRequest) (*structs.JobGraph, error) {
	if req == nil {
		return nil, fmt.Errorf("%w no job given", errors.ErrInvalidArg)
	}
	layers, err := req.LayerSpecs(s.table)
	if err != nil {
		return nil, err
	}
	return Assemble(s.compiler, req.JobMeta, layers)
}

// Submit assembles & launches the request.
func (s *Submitter) Submit(ctx context.Context, req *structs.JobRequest) ([]structs.JobHandle, error) {
	graph, err := s.Compile(req)
	if err != nil {
		return nil, err
	}
	return s.Launch(ctx, graph)
}

// SubmitLayers assembles & launches the given layers.
func (s *Submitter) SubmitLayers(ctx context.Context, meta structs.JobMeta, layers []*structs.LayerSpec) ([]structs.JobHandle, error) {
	graph, err := Assemble(s.compiler, meta, layers)
	if err != nil {
		return nil, err
	}
	return s.Launch(ctx, graph)
}

// Launch hands an already assembled graph to the launcher.
func (s *Submitter) Launch(ctx context.Context, graph *structs.JobGraph) ([]structs.JobHandle, error) {
	if s.launcher == nil {
		return nil, fmt.Errorf("%w no launcher configured", errors.ErrNotSupported)
	}

	log.Debug().Str("job", graph.Name).Str("show", graph.Show).Str("shot", graph.Shot).Int("layers", len(graph.Layers)).Msg("launching job")

	handles, err := s.launcher.Launch(ctx, graph)
	if err != nil {
		return nil, fmt.Errorf("launching job %s (%d layers): %w", graph.Name, len(graph.Layers), err)
	}

	for _, h := range handles {
		log.Info().Str("id", h.ID()).Str("name", h.Name()).Msg("launched job")
	}
	return handles, nil
}
