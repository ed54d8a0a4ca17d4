package structs

import (
	"fmt"

	"github.com/voidshard/cuesubmit/pkg/errors"
)

const (
	// DefaultLayerName is the name given to new layers
	DefaultLayerName = "Layer"
)

// LayerSpec is one render layer as described by a user.
type LayerSpec struct {
	// Name is a human readable name for this layer.
	// Names need not be unique.
	Name string `json:"name"`

	// LayerType is the application this layer renders with
	LayerType LayerType `json:"layerType"`

	// Settings are application specific key / values (eg. mayaFile, camera).
	// Keys a given LayerType doesn't understand are ignored.
	Settings map[string]string `json:"settings"`

	// FrameRange is the frames to render (eg. "1-100"). Required for submission.
	FrameRange string `json:"frameRange"`

	// Chunk is the number of frames grouped into one execution unit. At least 1.
	Chunk int64 `json:"chunk"`

	// Cores is the minimum number of cores reserved per execution unit.
	Cores float64 `json:"cores"`

	// Env are environment variables to set for the layer
	Env map[string]string `json:"env"`

	// Services & Limits are passed through to the execution service
	Services []string `json:"services"`
	Limits   []string `json:"limits"`

	// ApplicationVersion selects a command from RenderCommands
	ApplicationVersion string            `json:"applicationVersion"`
	RenderCommands     map[string]string `json:"renderCommands"`

	// DependType is how this layer depends on the layer before it.
	DependType DependType `json:"dependType"`
}

// LayerUpdate is a partial update to a LayerSpec.
// Nil fields are left untouched.
type LayerUpdate struct {
	Name               *string
	LayerType          *LayerType
	Settings           map[string]string
	FrameRange         *string
	Chunk              *int64
	Cores              *float64
	Env                map[string]string
	Services           []string
	Limits             []string
	ApplicationVersion *string
	DependType         *DependType
}

// NewLayerSpec creates a layer of the given type populated with the table's defaults.
// An empty type is replaced with the table's default type.
func NewLayerSpec(table *DefaultsTable, lt LayerType) *LayerSpec {
	if lt == "" {
		lt = table.DefaultType()
	}
	l := &LayerSpec{
		Name:       DefaultLayerName,
		LayerType:  lt,
		Settings:   map[string]string{},
		Env:        map[string]string{},
		Limits:     []string{},
		DependType: DependNone,
	}
	l.populateDefaults(table)
	return l
}

func (l *LayerSpec) populateDefaults(table *DefaultsTable) {
	d := table.Get(l.LayerType)
	l.Chunk = d.Chunk
	l.Cores = d.MinCores
	l.RenderCommands = d.RenderCommands
	l.Services = d.Services
	l.ApplicationVersion = d.Versions()[0]
}

// Update merges the given fields into the layer.
//
// An application version must be one the (new) type has a render command for.
// If the layer type changes the new type's defaults (chunk, cores, render commands,
// services) are applied first, so values given in the same update still win.
func (l *LayerSpec) Update(table *DefaultsTable, u *LayerUpdate) error {
	if u == nil {
		return nil
	}
	if u.Chunk != nil && *u.Chunk < 1 {
		return fmt.Errorf("%w chunk must be at least 1, got %d", errors.ErrInvalidArg, *u.Chunk)
	}
	if u.Cores != nil && *u.Cores < 0 {
		return fmt.Errorf("%w cores must not be negative, got %v", errors.ErrInvalidArg, *u.Cores)
	}
	if u.DependType != nil {
		if _, ok := ToDependType(string(*u.DependType)); !ok {
			return fmt.Errorf("%w depend type %s", errors.ErrInvalidArg, *u.DependType)
		}
	}

	if u.ApplicationVersion != nil && *u.ApplicationVersion != "" {
		cmds := l.RenderCommands
		if u.LayerType != nil && *u.LayerType != l.LayerType {
			cmds = table.Get(*u.LayerType).RenderCommands
		}
		if _, ok := cmds[*u.ApplicationVersion]; !ok {
			return fmt.Errorf("%w unknown application version %s", errors.ErrInvalidArg, *u.ApplicationVersion)
		}
	}

	if u.LayerType != nil && *u.LayerType != l.LayerType {
		l.LayerType = *u.LayerType
		l.populateDefaults(table)
	}
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Settings != nil {
		l.Settings = copyMap(u.Settings)
	}
	if u.FrameRange != nil {
		l.FrameRange = *u.FrameRange
	}
	if u.Chunk != nil {
		l.Chunk = *u.Chunk
	}
	if u.Cores != nil {
		l.Cores = *u.Cores
	}
	if u.Env != nil {
		l.Env = copyMap(u.Env)
	}
	if u.Services != nil {
		l.Services = append([]string{}, u.Services...)
	}
	if u.Limits != nil {
		l.Limits = append([]string{}, u.Limits...)
	}
	if u.ApplicationVersion != nil && *u.ApplicationVersion != "" {
		l.ApplicationVersion = *u.ApplicationVersion
	}
	if u.DependType != nil {
		l.DependType, _ = ToDependType(string(*u.DependType))
	}
	return nil
}

// DependsOnPrevious reports whether this layer depends on the layer submitted before it.
func (l *LayerSpec) DependsOnPrevious() bool {
	return l.DependType != DependNone
}

// Threadable reports whether the layer may run multi-core.
func (l *LayerSpec) Threadable() bool {
	return l.Cores >= 2
}

// RenderCommand returns the command registered for the selected application version,
// or "" if there isn't one.
func (l *LayerSpec) RenderCommand() string {
	return l.RenderCommands[l.ApplicationVersion]
}

// ToRecord flattens the layer into a plain map.
func (l *LayerSpec) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"name":               l.Name,
		"layerType":          string(l.LayerType),
		"settings":           copyMap(l.Settings),
		"frameRange":         l.FrameRange,
		"chunk":              l.Chunk,
		"cores":              l.Cores,
		"applicationVersion": l.ApplicationVersion,
		"env":                copyMap(l.Env),
		"services":           append([]string{}, l.Services...),
		"limits":             append([]string{}, l.Limits...),
		"dependType":         string(l.DependType),
		"dependsOnPrevious":  l.DependsOnPrevious(),
	}
}

func (l *LayerSpec) String() string {
	return fmt.Sprintf("%v", l.ToRecord())
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
