package compile

import (
	"github.com/voidshard/cuesubmit/internal/utils"
)

const (
	defFrameToken        = "#IFRAME#"
	defMayaRenderCmd     = "Render"
	defNukeRenderCmd     = "nuke"
	defBlenderRenderCmd  = "blender"
	defArnoldRenderCmd   = "kick"
	defArnoldLibraryPath = "/opt/hfs18.0/dsolib"
)

// Options control how commands are written.
type Options struct {
	// FrameToken is substituted with the frame number by the execution service at run time.
	FrameToken string

	// Render commands used when a layer has none registered for its application version.
	MayaRenderCmd    string
	NukeRenderCmd    string
	BlenderRenderCmd string
	ArnoldRenderCmd  string

	// ArnoldLibraryPath is appended to LD_LIBRARY_PATH before kick runs
	ArnoldLibraryPath string

	// NewID returns a new unique name for temporary render outputs.
	// Defaults to a random hex string.
	NewID func() string
}

// SetDefaults fills in any unset options.
func (o *Options) SetDefaults() {
	if o.FrameToken == "" {
		o.FrameToken = defFrameToken
	}
	if o.MayaRenderCmd == "" {
		o.MayaRenderCmd = defMayaRenderCmd
	}
	if o.NukeRenderCmd == "" {
		o.NukeRenderCmd = defNukeRenderCmd
	}
	if o.BlenderRenderCmd == "" {
		o.BlenderRenderCmd = defBlenderRenderCmd
	}
	if o.ArnoldRenderCmd == "" {
		o.ArnoldRenderCmd = defArnoldRenderCmd
	}
	if o.ArnoldLibraryPath == "" {
		o.ArnoldLibraryPath = defArnoldLibraryPath
	}
	if o.NewID == nil {
		o.NewID = utils.NewRandomHex
	}
}

// OptionsDefault returns options with every default set.
func OptionsDefault() *Options {
	o := &Options{}
	o.SetDefaults()
	return o
}
