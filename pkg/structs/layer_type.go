package structs

import (
	"strings"
)

// LayerType is the application a layer renders with.
type LayerType string

const (
	ARNOLD  LayerType = "Arnold"
	BLENDER LayerType = "Blender"
	MAYA    LayerType = "Maya"
	NUKE    LayerType = "Nuke"
	SHELL   LayerType = "Shell"
)

// DependType is how a layer depends on the layer submitted before it.
type DependType string

const (
	// DependNone creates no dependency
	DependNone DependType = ""

	// DependAllFrames waits for every frame of the previous layer
	DependAllFrames DependType = "Layer"

	// DependMatchingFrame waits for the same frame of the previous layer
	DependMatchingFrame DependType = "Frame"
)

// LayerTypes returns the available layer types in display order.
func LayerTypes() []LayerType {
	return []LayerType{SHELL, MAYA, NUKE, BLENDER, ARNOLD}
}

func ToLayerType(s string) LayerType {
	switch strings.ToLower(s) {
	case "arnold":
		return ARNOLD
	case "blender":
		return BLENDER
	case "maya":
		return MAYA
	case "nuke":
		return NUKE
	case "shell":
		return SHELL
	default:
		return ""
	}
}

func ToDependType(s string) (DependType, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return DependNone, true
	case "layer", "allframes", "all_frames":
		return DependAllFrames, true
	case "frame", "matchingframe", "matching_frame":
		return DependMatchingFrame, true
	default:
		return "", false
	}
}
