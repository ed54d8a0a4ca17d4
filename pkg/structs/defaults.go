package structs

import (
	"sort"
)

const (
	defaultChunk    = 1
	defaultMinCores = 1

	// DefaultVersion is the application version key used when no render commands are registered
	DefaultVersion = "default"
)

// TypeDefaults are the values a layer starts with for a given LayerType.
type TypeDefaults struct {
	// Chunk is the number of frames per execution unit
	Chunk int64 `json:"chunk"`

	// MinCores is the minimum number of cores reserved per execution unit
	MinCores float64 `json:"min_cores"`

	// RenderCommands maps application version -> render command
	RenderCommands map[string]string `json:"render_commands"`

	// Services are the service tags a layer of this type is given
	Services []string `json:"services"`
}

// Versions returns the registered application versions, sorted.
// The first version is the one a new layer selects.
func (d *TypeDefaults) Versions() []string {
	out := make([]string, 0, len(d.RenderCommands))
	for k := range d.RenderCommands {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (d *TypeDefaults) copy() *TypeDefaults {
	cmds := make(map[string]string, len(d.RenderCommands))
	for k, v := range d.RenderCommands {
		cmds[k] = v
	}
	return &TypeDefaults{
		Chunk:          d.Chunk,
		MinCores:       d.MinCores,
		RenderCommands: cmds,
		Services:       append([]string{}, d.Services...),
	}
}

func (d *TypeDefaults) sanitize() {
	if d.Chunk < 1 {
		d.Chunk = defaultChunk
	}
	if d.MinCores < 0 {
		d.MinCores = defaultMinCores
	}
	if len(d.RenderCommands) == 0 {
		d.RenderCommands = map[string]string{DefaultVersion: ""}
	}
	if d.Services == nil {
		d.Services = []string{}
	}
}

// DefaultsTable holds TypeDefaults keyed by LayerType.
//
// A table is built once & never changes; lookups hand out copies.
type DefaultsTable struct {
	defaultType LayerType
	byType      map[LayerType]*TypeDefaults
	fallback    *TypeDefaults
}

// NewDefaultsTable builds a table from the given defaults. Types without an entry are
// given `fallback` (or 1 chunk, 1 core if that is nil). A chunk below 1 or negative
// cores are replaced with the same.
func NewDefaultsTable(defaultType LayerType, byType map[LayerType]*TypeDefaults, fallback *TypeDefaults) *DefaultsTable {
	if fallback == nil {
		fallback = &TypeDefaults{Chunk: defaultChunk, MinCores: defaultMinCores}
	}
	fb := fallback.copy()
	fb.sanitize()

	table := &DefaultsTable{
		defaultType: defaultType,
		byType:      map[LayerType]*TypeDefaults{},
		fallback:    fb,
	}
	if table.defaultType == "" {
		table.defaultType = SHELL
	}
	for k, v := range byType {
		if v == nil {
			continue
		}
		d := v.copy()
		d.sanitize()
		table.byType[k] = d
	}
	return table
}

// DefaultsTableDefault returns a table where every type runs 1 frame per chunk on 1 core.
func DefaultsTableDefault() *DefaultsTable {
	return NewDefaultsTable(SHELL, nil, nil)
}

// DefaultType is the type a new layer has if none is given.
func (t *DefaultsTable) DefaultType() LayerType {
	return t.defaultType
}

// Get returns the defaults for the given type, or the fallback entry.
func (t *DefaultsTable) Get(lt LayerType) *TypeDefaults {
	d, ok := t.byType[lt]
	if !ok {
		return t.fallback.copy()
	}
	return d.copy()
}
