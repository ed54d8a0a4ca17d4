package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/cuesubmit/internal/mocks/pkg/submit_mock"
	"github.com/voidshard/cuesubmit/pkg/api/http/common"
	"github.com/voidshard/cuesubmit/pkg/api/http/server"
	"github.com/voidshard/cuesubmit/pkg/compile"
	"github.com/voidshard/cuesubmit/pkg/structs"
	"github.com/voidshard/cuesubmit/pkg/submit"
)

func testRequest() *structs.JobRequest {
	return &structs.JobRequest{
		JobMeta: structs.JobMeta{Name: "job01", Show: "testing", Shot: "sh010", Username: "bob"},
		Layers: []*structs.LayerRecord{
			{
				Name:       "sim",
				LayerType:  "Shell",
				FrameRange: "1-10",
				Settings:   map[string]string{compile.KeyShellCommand: "echo sim"},
			},
		},
	}
}

func newTestClient(t *testing.T) (*submit_mock.MockLauncher, *Client) {
	launcher := submit_mock.NewMockLauncher(gomock.NewController(t))
	svc := submit.NewSubmitter(launcher, nil, nil)

	ts := httptest.NewServer(server.NewServer(":0", "Test Submit", svc, nil, false).Router())
	t.Cleanup(ts.Close)

	c, err := New(ts.URL, nil)
	assert.Nil(t, err)
	return launcher, c
}

func TestLaunch(t *testing.T) {
	var got *structs.JobGraph
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, common.API_JOBS, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		got = &structs.JobGraph{}
		assert.Nil(t, json.NewDecoder(r.Body).Decode(got))
		w.Write([]byte(`[{"id": "id-1", "name": "testing-sh010-job01"}]`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, nil)
	assert.Nil(t, err)

	svc := submit.NewSubmitter(c, nil, nil)
	handles, err := svc.Submit(context.Background(), testRequest())

	assert.Nil(t, err)
	assert.Len(t, handles, 1)
	assert.Equal(t, "id-1", handles[0].ID())
	assert.Equal(t, "testing-sh010-job01", handles[0].Name())
	assert.Equal(t, "job01", got.Name)
	assert.Equal(t, "echo sim", got.Layers[0].Command)
}

func TestLaunchBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "cuebot unreachable", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(ts.URL, nil)
	assert.Nil(t, err)

	handles, err := c.Launch(context.Background(), &structs.JobGraph{})

	assert.Nil(t, handles)
	assert.EqualError(t, err, "bad status code 502, returned cuebot unreachable")
}

func TestSubmit(t *testing.T) {
	launcher, c := newTestClient(t)
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(
		[]structs.JobHandle{&structs.LaunchedJob{JobID: "id-1", JobName: "n"}}, nil,
	)

	handles, err := c.Submit(context.Background(), testRequest())

	assert.Nil(t, err)
	assert.Len(t, handles, 1)
	assert.Equal(t, "id-1", handles[0].ID())
}

func TestCompile(t *testing.T) {
	_, c := newTestClient(t)

	graph, err := c.Compile(context.Background(), testRequest())

	assert.Nil(t, err)
	assert.Equal(t, "job01", graph.Name)
	assert.Len(t, graph.Layers, 1)
	assert.Equal(t, "echo sim", graph.Layers[0].Command)
}

func TestCompileInvalid(t *testing.T) {
	_, c := newTestClient(t)
	req := testRequest()
	req.Layers[0].Settings = nil

	_, err := c.Compile(context.Background(), req)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "bad status code 400")
	assert.Contains(t, err.Error(), "no command provided")
}

func TestSequences(t *testing.T) {
	_, c := newTestClient(t)

	out, err := c.Sequences(context.Background(), &common.SequencesRequest{
		Paths: []string{"/r/a.0001.exr", "/r/a.0002.exr", "/r/a.0003.exr"},
	})

	assert.Nil(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "/r/a.[0001-0003].exr", out[0].Label)
	assert.Equal(t, 3, len(out[0].Paths))
}

func TestHealth(t *testing.T) {
	_, c := newTestClient(t)

	health, err := c.Health(context.Background())

	assert.Nil(t, err)
	assert.True(t, health.OK)
	assert.Equal(t, "Test Submit", health.Name)
}
