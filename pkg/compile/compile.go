// compile turns layer settings into the shell commands the execution service runs.
package compile

import (
	"fmt"
	"path"

	"github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

const (
	// arnoldFrameVar is the shell variable holding the padded current frame
	arnoldFrameVar = "$currentFrame"
)

// Compiler writes render commands for each layer type.
//
// A Compiler holds no state beyond its options & is safe to share.
type Compiler struct {
	opts *Options
}

// New returns a Compiler. Unset options are defaulted.
func New(opts *Options) *Compiler {
	o := &Options{}
	if opts != nil {
		*o = *opts
	}
	o.SetDefaults()
	return &Compiler{opts: o}
}

// FrameToken is the placeholder written wherever the current frame is needed.
func (c *Compiler) FrameToken() string {
	return c.opts.FrameToken
}

// Layer compiles the given layer, using the render command registered for the layer's
// application version if it has one.
func (c *Compiler) Layer(l *structs.LayerSpec) (string, error) {
	return c.compile(l.LayerType, l.Settings, l.RenderCommand())
}

// Compile compiles settings for the given layer type with the default render command.
func (c *Compiler) Compile(lt structs.LayerType, settings map[string]string) (string, error) {
	return c.compile(lt, settings, "")
}

func (c *Compiler) compile(lt structs.LayerType, settings map[string]string, renderCmd string) (string, error) {
	if settings == nil {
		settings = map[string]string{}
	}
	switch lt {
	case structs.MAYA:
		return c.Maya(settings, renderCmd)
	case structs.NUKE:
		return c.Nuke(settings, renderCmd)
	case structs.BLENDER:
		return c.Blender(settings, renderCmd)
	case structs.ARNOLD:
		return c.Arnold(settings, renderCmd)
	case structs.SHELL:
		return c.Shell(settings)
	default:
		return "", &errors.UnknownLayerTypeError{LayerType: string(lt)}
	}
}

func orDefault(given, def string) string {
	if given == "" {
		return def
	}
	return given
}

// Maya writes
//
//	Render -r file -s <frame> -e <frame> [-cam <camera>] [-proj '<project>'] <file>
func (c *Compiler) Maya(settings map[string]string, renderCmd string) (string, error) {
	s, err := parseMayaSettings(settings)
	if err != nil {
		return "", err
	}

	cmd := newCommand(
		orDefault(renderCmd, c.opts.MayaRenderCmd),
		"-r", "file", "-s", c.opts.FrameToken, "-e", c.opts.FrameToken,
	)
	cmd.flag("-cam", s.camera)
	if s.project != "" {
		cmd.add("-proj", fmt.Sprintf("'%s'", s.project))
	}
	cmd.add(s.file)

	return cmd.String(), nil
}

// Nuke writes
//
//	nuke -F <frame> [-X <writeNodes>] -x <file>
func (c *Compiler) Nuke(settings map[string]string, renderCmd string) (string, error) {
	s, err := parseNukeSettings(settings)
	if err != nil {
		return "", err
	}

	cmd := newCommand(orDefault(renderCmd, c.opts.NukeRenderCmd), "-F", c.opts.FrameToken)
	cmd.flag("-X", s.writeNodes)
	cmd.add("-x", s.file)

	return cmd.String(), nil
}

// Blender writes
//
//	blender -b -noaudio <file> [-o <outputPath>] [-F <outputFormat>] -f <frame>
//
// Blender applies arguments in order, so the frame must come after the scene & output flags.
func (c *Compiler) Blender(settings map[string]string, renderCmd string) (string, error) {
	s, err := parseBlenderSettings(settings)
	if err != nil {
		return "", err
	}

	cmd := newCommand(orDefault(renderCmd, c.opts.BlenderRenderCmd), "-b", "-noaudio", s.file)
	cmd.flag("-o", s.outputPath)
	cmd.flag("-F", s.outputFormat)
	cmd.add("-f", c.opts.FrameToken)

	return cmd.String(), nil
}

// Shell returns the user's command unchanged.
func (c *Compiler) Shell(settings map[string]string) (string, error) {
	s, err := parseShellSettings(settings)
	if err != nil {
		return "", err
	}
	return s.command, nil
}

// Arnold writes a small script that pads the current frame, runs kick on the matching
// .ass file & (if an output is configured) renders to a temporary file that is then
// moved to its final name.
func (c *Compiler) Arnold(settings map[string]string, renderCmd string) (string, error) {
	s, err := parseArnoldSettings(settings)
	if err != nil {
		return "", err
	}

	sc := &script{}
	sc.add("export LD_LIBRARY_PATH=$LD_LIBRARY_PATH:" + c.opts.ArnoldLibraryPath)

	padding := "%d"
	if s.input.Zfill() > 0 {
		padding = fmt.Sprintf("%%0%dd", s.input.Zfill())
	}
	sc.add(fmt.Sprintf(`currentFrame=$(printf "%s" "%s")`, padding, c.opts.FrameToken))

	kick := newCommand(orDefault(renderCmd, c.opts.ArnoldRenderCmd), "-i", quote(s.input.Template(arnoldFrameVar), arnoldFrameVar))

	tempPath := ""
	finalPath := ""
	if s.output != nil {
		tempName := fmt.Sprintf("%s_%s.%s", c.opts.NewID(), arnoldFrameVar, s.fileType)
		tempPath = path.Join(s.folder, tempName)
		finalPath = path.Join(s.folder, s.output.TemplateBase(arnoldFrameVar))
		kick.add("-o", quote(tempPath, arnoldFrameVar))
	}
	kick.flag("-of", s.fileType)
	kick.add("-v", "4", "-nstdin", "-dw", "-dp")
	sc.add(kick.String())

	if finalPath != "" {
		sc.add(newCommand("mv", quote(tempPath, arnoldFrameVar), quote(finalPath, arnoldFrameVar)).String())
	}

	return sc.String(), nil
}
