// config loads cuesubmit settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voidshard/cuesubmit/pkg/compile"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

const (
	// EnvConfigFile names the config file if no path is given explicitly
	EnvConfigFile = "CUESUBMIT_CONFIG_FILE"

	// defaultKey is the LAYER_TYPE_SETTINGS entry used for types without their own
	defaultKey = "DEFAULT"

	defUIName   = "OpenCue Submit"
	defChunk    = 1
	defMinCores = 1
)

// TypeSettings are per layer type defaults.
type TypeSettings struct {
	Chunk          *int64            `yaml:"CHUNK"`
	MinCores       *float64          `yaml:"MIN_CORES"`
	RenderCommands map[string]string `yaml:"RENDER_CMD"`
	Services       []string          `yaml:"SERVICES"`
}

// Config is the contents of a cuesubmit config file.
type Config struct {
	UIName string `yaml:"UI_NAME"`

	FrameToken        string `yaml:"FRAME_TOKEN"`
	MayaRenderCmd     string `yaml:"MAYA_RENDER_CMD"`
	NukeRenderCmd     string `yaml:"NUKE_RENDER_CMD"`
	BlenderRenderCmd  string `yaml:"BLENDER_RENDER_CMD"`
	ArnoldRenderCmd   string `yaml:"ARNOLD_RENDER_CMD"`
	ArnoldLibraryPath string `yaml:"ARNOLD_LIBRARY_PATH"`

	DefaultLayerType string `yaml:"DEFAULT_LAYER_TYPE"`

	// LayerTypeSettings is keyed by layer type name (eg. "Maya") or "DEFAULT"
	LayerTypeSettings map[string]*TypeSettings `yaml:"LAYER_TYPE_SETTINGS"`
}

// Defaults returns the config used when no file is given.
func Defaults() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	if c.UIName == "" {
		c.UIName = defUIName
	}
	if structs.ToLayerType(c.DefaultLayerType) == "" {
		c.DefaultLayerType = string(structs.SHELL)
	}
	if c.LayerTypeSettings == nil {
		c.LayerTypeSettings = map[string]*TypeSettings{}
	}
}

// Load reads the config at the given path. If path is empty we check $CUESUBMIT_CONFIG_FILE,
// and failing that return Defaults().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML config.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(data, c)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for k := range c.LayerTypeSettings {
		if k != defaultKey && structs.ToLayerType(k) == "" {
			return nil, fmt.Errorf("parsing config: unknown layer type %s in LAYER_TYPE_SETTINGS", k)
		}
	}
	c.SetDefaults()
	return c, nil
}

// Table builds the layer defaults table described by this config.
func (c *Config) Table() *structs.DefaultsTable {
	byType := map[structs.LayerType]*structs.TypeDefaults{}
	var fallback *structs.TypeDefaults
	for k, v := range c.LayerTypeSettings {
		if v == nil {
			continue
		}
		d := &structs.TypeDefaults{
			Chunk:          defChunk,
			MinCores:       defMinCores,
			RenderCommands: v.RenderCommands,
			Services:       v.Services,
		}
		if v.Chunk != nil {
			d.Chunk = *v.Chunk
		}
		if v.MinCores != nil {
			d.MinCores = *v.MinCores
		}
		if k == defaultKey {
			fallback = d
			continue
		}
		byType[structs.ToLayerType(k)] = d
	}
	return structs.NewDefaultsTable(structs.ToLayerType(c.DefaultLayerType), byType, fallback)
}

// CompileOptions returns options for a compile.Compiler.
func (c *Config) CompileOptions() *compile.Options {
	opts := &compile.Options{
		FrameToken:        c.FrameToken,
		MayaRenderCmd:     c.MayaRenderCmd,
		NukeRenderCmd:     c.NukeRenderCmd,
		BlenderRenderCmd:  c.BlenderRenderCmd,
		ArnoldRenderCmd:   c.ArnoldRenderCmd,
		ArnoldLibraryPath: c.ArnoldLibraryPath,
	}
	opts.SetDefaults()
	return opts
}
