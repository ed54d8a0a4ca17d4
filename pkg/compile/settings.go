package compile

import (
	"fmt"
	"strings"

	"github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/fileseq"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

// Settings keys understood by each layer type
const (
	KeyMayaFile    = "mayaFile"
	KeyMayaProject = "mayaProject"
	KeyCamera      = "camera"

	KeyNukeFile   = "nukeFile"
	KeyWriteNodes = "writeNodes"

	KeyBlenderFile  = "blenderFile"
	KeyOutputPath   = "outputPath"
	KeyOutputFormat = "outputFormat"

	KeyShellCommand = "commandTextBox"

	KeyArnoldFile     = "arnoldFile"
	KeyRenderFolder   = "renderFolder"
	KeyRenderFile     = "renderFile"
	KeyRenderFileType = "renderFileType"
)

// BlenderFormats are common values for blender's -F, offered as presets.
// outputFormat is passed through as given; it need not be one of these.
var BlenderFormats = []string{
	"AVIJPEG", "AVIRAW", "BMP", "CINEON", "DPX", "EXR", "HDR", "IRIS", "IRIZ",
	"JP2", "JPEG", "MPEG", "MULTILAYER", "PNG", "RAWTGA", "TGA", "TIFF",
}

type mayaSettings struct {
	file    string
	camera  string
	project string
}

func parseMayaSettings(in map[string]string) (*mayaSettings, error) {
	s := &mayaSettings{file: in[KeyMayaFile], project: in[KeyMayaProject]}
	if s.file == "" {
		return nil, errors.InvalidSettings(string(structs.MAYA), "no Maya file provided")
	}
	if camera, ok := in[KeyCamera]; ok {
		// a camera key means one must be chosen (ie. we were launched from within maya)
		if camera == "" {
			return nil, errors.InvalidSettings(string(structs.MAYA), "no camera selected")
		}
		s.camera = camera
	}
	return s, nil
}

type nukeSettings struct {
	file       string
	writeNodes string
}

func parseNukeSettings(in map[string]string) (*nukeSettings, error) {
	s := &nukeSettings{file: in[KeyNukeFile], writeNodes: in[KeyWriteNodes]}
	if s.file == "" {
		return nil, errors.InvalidSettings(string(structs.NUKE), "no Nuke file provided")
	}
	return s, nil
}

type blenderSettings struct {
	file         string
	outputPath   string
	outputFormat string
}

func parseBlenderSettings(in map[string]string) (*blenderSettings, error) {
	s := &blenderSettings{file: in[KeyBlenderFile], outputPath: in[KeyOutputPath], outputFormat: in[KeyOutputFormat]}
	if s.file == "" {
		return nil, errors.InvalidSettings(string(structs.BLENDER), "no Blender file provided")
	}
	return s, nil
}

type shellSettings struct {
	command string
}

func parseShellSettings(in map[string]string) (*shellSettings, error) {
	s := &shellSettings{command: in[KeyShellCommand]}
	if strings.TrimSpace(s.command) == "" {
		return nil, errors.InvalidSettings(string(structs.SHELL), "no command provided")
	}
	return s, nil
}

type arnoldSettings struct {
	input *fileseq.FileSequence

	folder   string
	fileType string

	// output is only set if both a render folder & file are given
	output *fileseq.FileSequence
}

func parseArnoldSettings(in map[string]string) (*arnoldSettings, error) {
	file := in[KeyArnoldFile]
	folder := in[KeyRenderFolder]
	renderFile := in[KeyRenderFile]
	s := &arnoldSettings{folder: folder, fileType: in[KeyRenderFileType]}

	reasons := []string{}
	if file == "" {
		reasons = append(reasons, "invalid arnold file")
	}
	if folder != "" && renderFile == "" {
		reasons = append(reasons, "invalid render file")
	}
	if len(reasons) > 0 {
		return nil, errors.InvalidSettings(string(structs.ARNOLD), strings.Join(reasons, ", "))
	}

	input, err := fileseq.Parse(file)
	if err != nil {
		return nil, errors.InvalidSettings(string(structs.ARNOLD), fmt.Sprintf("invalid arnold file: %v", err))
	}
	s.input = input

	if folder == "" {
		return s, nil
	}
	if s.fileType == "" {
		return nil, errors.InvalidSettings(string(structs.ARNOLD), "invalid render file type")
	}

	suffix := "." + s.fileType
	if !strings.HasSuffix(strings.ToLower(renderFile), strings.ToLower(suffix)) {
		renderFile += suffix
	}
	output, err := fileseq.Parse(renderFile)
	if err != nil {
		return nil, errors.InvalidSettings(string(structs.ARNOLD), fmt.Sprintf("invalid render file: %v", err))
	}
	if output.Zfill() != input.Zfill() {
		return nil, errors.InvalidSettings(string(structs.ARNOLD), "frame padding number of render file must match arnold file")
	}
	s.output = output

	return s, nil
}
