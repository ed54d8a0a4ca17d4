package structs

import (
	"fmt"
)

// LayerRecord is a LayerSpec as it arrives over the wire or from a job file.
//
// Chunk & Cores are pointers so that we can tell "not given" (use the type's defaults)
// from an explicit value.
type LayerRecord struct {
	Name               string            `json:"name" yaml:"name"`
	LayerType          string            `json:"layerType" yaml:"layerType"`
	Settings           map[string]string `json:"settings,omitempty" yaml:"settings,omitempty"`
	FrameRange         string            `json:"frameRange" yaml:"frameRange"`
	Chunk              *int64            `json:"chunk,omitempty" yaml:"chunk,omitempty"`
	Cores              *float64          `json:"cores,omitempty" yaml:"cores,omitempty"`
	Env                map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Services           []string          `json:"services,omitempty" yaml:"services,omitempty"`
	Limits             []string          `json:"limits,omitempty" yaml:"limits,omitempty"`
	ApplicationVersion string            `json:"applicationVersion,omitempty" yaml:"applicationVersion,omitempty"`
	DependType         string            `json:"dependType,omitempty" yaml:"dependType,omitempty"`
}

// LayerSpecFromRecord builds a LayerSpec from a record, starting from table defaults.
//
// A layer type we don't recognise is kept as given; compiling it will fail.
func LayerSpecFromRecord(table *DefaultsTable, rec *LayerRecord) (*LayerSpec, error) {
	lt := ToLayerType(rec.LayerType)
	if lt == "" && rec.LayerType != "" {
		lt = LayerType(rec.LayerType)
	}
	l := NewLayerSpec(table, lt)

	dt := DependType(rec.DependType)
	u := &LayerUpdate{
		Settings:           rec.Settings,
		FrameRange:         &rec.FrameRange,
		Chunk:              rec.Chunk,
		Cores:              rec.Cores,
		Env:                rec.Env,
		Services:           rec.Services,
		Limits:             rec.Limits,
		ApplicationVersion: &rec.ApplicationVersion,
		DependType:         &dt,
	}
	if rec.Name != "" {
		u.Name = &rec.Name
	}

	err := l.Update(table, u)
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w", rec.Name, err)
	}
	return l, nil
}
