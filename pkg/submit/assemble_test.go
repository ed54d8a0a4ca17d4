package submit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/cuesubmit/pkg/compile"
	ie "github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

var testMeta = structs.JobMeta{Name: "job01", Show: "testing", Shot: "sh010", Username: "bob"}

func testLayer(name string, lt structs.LayerType, settings map[string]string, dt structs.DependType) *structs.LayerSpec {
	l := structs.NewLayerSpec(structs.DefaultsTableDefault(), lt)
	l.Name = name
	l.Settings = settings
	l.FrameRange = "1-10"
	l.DependType = dt
	return l
}

func TestAssemble(t *testing.T) {
	layers := []*structs.LayerSpec{
		testLayer("sim", structs.SHELL, map[string]string{compile.KeyShellCommand: "echo sim"}, structs.DependAllFrames),
		testLayer("render", structs.MAYA, map[string]string{compile.KeyMayaFile: "/s/a.ma"}, structs.DependMatchingFrame),
		testLayer("comp", structs.NUKE, map[string]string{compile.KeyNukeFile: "/s/c.nk"}, structs.DependAllFrames),
		testLayer("extra", structs.SHELL, map[string]string{compile.KeyShellCommand: "echo done"}, structs.DependNone),
	}
	layers[1].Cores = 4
	layers[1].Chunk = 5
	layers[1].Services = []string{"maya", "gpu"}
	layers[1].Limits = []string{"maya-license"}
	layers[1].Env = map[string]string{"A": "b"}

	graph, err := Assemble(compile.New(nil), testMeta, layers)

	assert.Nil(t, err)
	assert.Equal(t, testMeta, graph.JobMeta)
	assert.Len(t, graph.Layers, 4)

	// the first layer has no one to depend on
	assert.Equal(t, "echo sim", graph.Layers[0].Command)
	assert.Nil(t, graph.Layers[0].Depend)
	assert.False(t, graph.Layers[0].Threadable)
	assert.Equal(t, "", graph.Layers[0].Service)

	assert.Equal(t, "Render -r file -s #IFRAME# -e #IFRAME# /s/a.ma", graph.Layers[1].Command)
	assert.Equal(t, &structs.Dependency{OnLayer: "sim", OnIndex: 0, Type: structs.DependMatchingFrame}, graph.Layers[1].Depend)
	assert.True(t, graph.Layers[1].Threadable)
	assert.Equal(t, float64(4), graph.Layers[1].Threads)
	assert.Equal(t, int64(5), graph.Layers[1].Chunk)
	assert.Equal(t, "maya", graph.Layers[1].Service)
	assert.Equal(t, []string{"maya-license"}, graph.Layers[1].Limits)
	assert.Equal(t, map[string]string{"A": "b"}, graph.Layers[1].Env)
	assert.Equal(t, "1-10", graph.Layers[1].Range)

	assert.Equal(t, &structs.Dependency{OnLayer: "render", OnIndex: 1, Type: structs.DependAllFrames}, graph.Layers[2].Depend)

	assert.Nil(t, graph.Layers[3].Depend)
}

func TestAssembleThreadable(t *testing.T) {
	cases := []struct {
		Name   string
		Cores  float64
		Expect bool
	}{
		{"JustUnder", 1.999, false},
		{"TwoFloat", 2.0, true},
		{"TwoInt", float64(2), true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			l := testLayer("l", structs.SHELL, map[string]string{compile.KeyShellCommand: "true"}, structs.DependNone)
			l.Cores = c.Cores

			graph, err := Assemble(compile.New(nil), testMeta, []*structs.LayerSpec{l})

			assert.Nil(t, err)
			assert.Equal(t, c.Expect, graph.Layers[0].Threadable)
		})
	}
}

func TestAssembleFailsFast(t *testing.T) {
	layers := []*structs.LayerSpec{
		testLayer("one", structs.SHELL, map[string]string{compile.KeyShellCommand: "echo one"}, structs.DependNone),
		testLayer("two", structs.MAYA, map[string]string{compile.KeyCamera: "persp"}, structs.DependAllFrames),
		testLayer("three", structs.SHELL, map[string]string{compile.KeyShellCommand: "echo three"}, structs.DependAllFrames),
	}

	graph, err := Assemble(compile.New(nil), testMeta, layers)

	assert.Nil(t, graph)
	var ile *ie.InvalidLayerSettingsError
	assert.True(t, errors.As(err, &ile))
	assert.Equal(t, string(structs.MAYA), ile.LayerType)
	assert.Contains(t, err.Error(), "layer 1 (two)")
}

func TestAssembleErrors(t *testing.T) {
	valid := testLayer("ok", structs.SHELL, map[string]string{compile.KeyShellCommand: "true"}, structs.DependNone)

	noRange := testLayer("norange", structs.SHELL, map[string]string{compile.KeyShellCommand: "true"}, structs.DependNone)
	noRange.FrameRange = ""

	badChunk := testLayer("badchunk", structs.SHELL, map[string]string{compile.KeyShellCommand: "true"}, structs.DependNone)
	badChunk.Chunk = 0

	unknown := testLayer("unknown", structs.LayerType("Houdini"), map[string]string{}, structs.DependNone)

	cases := []struct {
		Name      string
		Meta      structs.JobMeta
		Layers    []*structs.LayerSpec
		ExpectErr error
	}{
		{"NoName", structs.JobMeta{}, []*structs.LayerSpec{valid}, ie.ErrInvalidArg},
		{"NoLayers", testMeta, nil, ie.ErrNoLayers},
		{"NoRange", testMeta, []*structs.LayerSpec{valid, noRange}, ie.ErrInvalidLayerSettings},
		{"BadChunk", testMeta, []*structs.LayerSpec{badChunk}, ie.ErrInvalidLayerSettings},
		{"UnknownType", testMeta, []*structs.LayerSpec{valid, unknown}, ie.ErrUnknownLayerType},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			graph, err := Assemble(compile.New(nil), c.Meta, c.Layers)

			assert.Nil(t, graph)
			assert.ErrorIs(t, err, c.ExpectErr)
		})
	}
}
