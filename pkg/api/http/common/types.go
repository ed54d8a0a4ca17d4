package common

import (
	"github.com/voidshard/cuesubmit/pkg/fileseq"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

// HealthResponse is returned by API_HEALTH.
type HealthResponse struct {
	OK bool `json:"ok"`

	// Name is the server's configured UI_NAME
	Name string `json:"name"`
}

// LaunchResponse is returned by API_JOBS, one entry per job the execution service created.
type LaunchResponse []*structs.LaunchedJob

// Handles returns the response as structs.JobHandle(s).
func (l LaunchResponse) Handles() []structs.JobHandle {
	out := make([]structs.JobHandle, len(l))
	for i, j := range l {
		out[i] = j
	}
	return out
}

// NewLaunchResponse converts handles for the wire.
func NewLaunchResponse(handles []structs.JobHandle) LaunchResponse {
	out := make(LaunchResponse, len(handles))
	for i, h := range handles {
		out[i] = &structs.LaunchedJob{JobID: h.ID(), JobName: h.Name()}
	}
	return out
}

// SequencesRequest asks for the given paths to be grouped into sequences.
type SequencesRequest struct {
	Paths []string `json:"paths"`

	// Sizes optionally maps path -> size in bytes
	Sizes map[string]int64 `json:"sizes,omitempty"`
}

// Sequence describes one file sequence.
type Sequence struct {
	// Label is the collapsed form, eg. /r/plate.[0001-0010].exr
	Label     string   `json:"label"`
	Paths     []string `json:"paths"`
	HasFrames bool     `json:"has_frames"`
	Zfill     int      `json:"zfill"`
	Start     int      `json:"start"`
	End       int      `json:"end"`

	// Size is the sum of known member sizes; SizeLabel is empty if nothing is known
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
}

// NewSequence describes the given sequence. Sizes may be nil.
func NewSequence(seq *fileseq.FileSequence, sizes map[string]int64) (*Sequence, error) {
	label, err := fileseq.FormatAsRangeLabel(seq)
	if err != nil {
		return nil, err
	}

	out := &Sequence{
		Label:     label,
		Paths:     fileseq.FormatAsExpandedPaths(seq),
		HasFrames: seq.HasFrames(),
		Zfill:     seq.Zfill(),
		Start:     seq.Start(),
		End:       seq.End(),
	}
	for _, p := range out.Paths {
		out.Size += sizes[p]
	}
	out.SizeLabel = fileseq.SizeLabel(out.Size)
	return out, nil
}

// SequencesResponse is returned by API_SEQUENCES, in the order sequences were first seen.
type SequencesResponse []*Sequence
