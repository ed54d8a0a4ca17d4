package submit

import (
	"fmt"

	"github.com/voidshard/cuesubmit/pkg/compile"
	"github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

// Assemble compiles each layer in order & wires dependencies between neighbours.
//
// The first layer that fails aborts assembly; no partial graph is returned.
func Assemble(c *compile.Compiler, meta structs.JobMeta, layers []*structs.LayerSpec) (*structs.JobGraph, error) {
	if meta.Name == "" {
		return nil, fmt.Errorf("%w job name is required", errors.ErrInvalidArg)
	}
	if len(layers) == 0 {
		return nil, errors.ErrNoLayers
	}

	graph := &structs.JobGraph{JobMeta: meta, Layers: make([]*structs.CompiledLayer, 0, len(layers))}

	var last *structs.CompiledLayer
	for i, l := range layers {
		compiled, err := compileLayer(c, l)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Name, err)
		}
		if l.DependsOnPrevious() && last != nil {
			compiled.Depend = &structs.Dependency{OnLayer: last.Name, OnIndex: i - 1, Type: l.DependType}
		}
		graph.Layers = append(graph.Layers, compiled)
		last = compiled
	}

	return graph, nil
}

func compileLayer(c *compile.Compiler, l *structs.LayerSpec) (*structs.CompiledLayer, error) {
	if l.FrameRange == "" {
		return nil, errors.InvalidSettings(string(l.LayerType), "no frame range given")
	}
	if l.Chunk < 1 {
		return nil, errors.InvalidSettings(string(l.LayerType), fmt.Sprintf("chunk must be at least 1, got %d", l.Chunk))
	}

	cmd, err := c.Layer(l)
	if err != nil {
		return nil, err
	}

	out := &structs.CompiledLayer{
		Name:       l.Name,
		LayerType:  l.LayerType,
		Command:    cmd,
		Range:      l.FrameRange,
		Chunk:      l.Chunk,
		Threads:    l.Cores,
		Threadable: l.Threadable(),
		Limits:     append([]string{}, l.Limits...),
	}
	if len(l.Services) > 0 {
		out.Service = l.Services[0]
	}
	if len(l.Env) > 0 {
		out.Env = map[string]string{}
		for k, v := range l.Env {
			out.Env[k] = v
		}
	}
	return out, nil
}
