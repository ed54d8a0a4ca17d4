package submit

import (
	"context"

	"github.com/voidshard/cuesubmit/pkg/structs"
)

// Launcher hands an assembled job to the execution service.
type Launcher interface {
	// Launch submits the job graph & returns handles for the job(s) created.
	//
	// Errors are returned as-is; we never retry a launch.
	Launch(ctx context.Context, graph *structs.JobGraph) ([]structs.JobHandle, error)
}
