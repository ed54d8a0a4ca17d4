package structs

import (
	"fmt"
)

// JobMeta are the job level fields given with a submission.
type JobMeta struct {
	Name     string `json:"name" yaml:"name"`
	Show     string `json:"show" yaml:"show"`
	Shot     string `json:"shot" yaml:"shot"`
	Username string `json:"username" yaml:"username"`

	// Facility is optional; if unset the execution service picks one
	Facility string `json:"facility,omitempty" yaml:"facility,omitempty"`
}

// JobRequest is a job as described by a user: metadata & ordered layers.
type JobRequest struct {
	JobMeta `json:",inline" yaml:",inline"`

	Layers []*LayerRecord `json:"layers" yaml:"layers"`
}

// LayerSpecs converts the request's layer records into LayerSpecs, in order.
func (r *JobRequest) LayerSpecs(table *DefaultsTable) ([]*LayerSpec, error) {
	out := make([]*LayerSpec, 0, len(r.Layers))
	for i, rec := range r.Layers {
		if rec == nil {
			return nil, fmt.Errorf("layer %d is empty", i)
		}
		l, err := LayerSpecFromRecord(table, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Dependency is an edge from a layer to the layer before it.
type Dependency struct {
	// OnLayer is the name of the layer depended on
	OnLayer string `json:"on_layer"`

	// OnIndex is the position of the layer depended on within the job
	OnIndex int `json:"on_index"`

	// Type is either DependAllFrames or DependMatchingFrame
	Type DependType `json:"type"`
}

// CompiledLayer is a layer ready for submission.
type CompiledLayer struct {
	Name      string    `json:"name"`
	LayerType LayerType `json:"layer_type"`

	// Command is the full shell command to run per frame / chunk
	Command string `json:"command"`

	Range      string            `json:"range"`
	Chunk      int64             `json:"chunk"`
	Threads    float64           `json:"threads"`
	Threadable bool              `json:"threadable"`
	Service    string            `json:"service,omitempty"`
	Limits     []string          `json:"limits"`
	Env        map[string]string `json:"env,omitempty"`

	// Depend is set if this layer depends on the layer before it
	Depend *Dependency `json:"depend,omitempty"`
}

// JobGraph is an assembled job handed to the execution service.
type JobGraph struct {
	JobMeta `json:",inline"`

	Layers []*CompiledLayer `json:"layers"`
}

// JobHandle is a job the execution service has accepted.
type JobHandle interface {
	ID() string
	Name() string
}

// LaunchedJob is a JobHandle as returned over the wire.
type LaunchedJob struct {
	JobID   string `json:"id"`
	JobName string `json:"name"`
}

func (j *LaunchedJob) ID() string {
	return j.JobID
}

func (j *LaunchedJob) Name() string {
	return j.JobName
}
