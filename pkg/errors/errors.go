package errors

import (
	"fmt"
)

var (
	ErrNoLayers             = fmt.Errorf("no layers specified")
	ErrInvalidArg           = fmt.Errorf("invalid arg")
	ErrInvalidLayerSettings = fmt.Errorf("invalid layer settings")
	ErrUnknownLayerType     = fmt.Errorf("unknown layer type")
	ErrEmptySequence        = fmt.Errorf("no paths found in file sequence")
	ErrNotSupported         = fmt.Errorf("not supported")
)

// InvalidLayerSettingsError is returned when a layer's settings are missing a required
// field or fail a cross field check.
type InvalidLayerSettingsError struct {
	LayerType string
	Reason    string
}

func (e *InvalidLayerSettingsError) Error() string {
	return fmt.Sprintf("%s layer: %s", e.LayerType, e.Reason)
}

func (e *InvalidLayerSettingsError) Unwrap() error {
	return ErrInvalidLayerSettings
}

// InvalidSettings returns a new InvalidLayerSettingsError
func InvalidSettings(layerType, reason string) error {
	return &InvalidLayerSettingsError{LayerType: layerType, Reason: reason}
}

// UnknownLayerTypeError is returned when no compiler is registered for a layer type.
type UnknownLayerTypeError struct {
	LayerType string
}

func (e *UnknownLayerTypeError) Error() string {
	return fmt.Sprintf("unrecognized layer type %q", e.LayerType)
}

func (e *UnknownLayerTypeError) Unwrap() error {
	return ErrUnknownLayerType
}
