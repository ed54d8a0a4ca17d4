package client

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/voidshard/cuesubmit/pkg/api/http/common"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

const (
	timeout = 30 * time.Second
)

// Client talks to a cuesubmit server, or any execution service accepting JobGraphs on API_JOBS.
//
// Client implements submit.Launcher.
type Client struct {
	url  *url.URL
	http *http.Client
}

// New returns a client for the given address. tlsConfig may be nil.
func New(address string, tlsConfig *tls.Config) (*Client, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	return &Client{url: u, http: &http.Client{Transport: transport, Timeout: timeout}}, nil
}

// Launch posts an assembled graph to API_JOBS.
func (c *Client) Launch(ctx context.Context, graph *structs.JobGraph) ([]structs.JobHandle, error) {
	var out common.LaunchResponse
	err := c.genericPost(ctx, c.addr(common.API_JOBS), graph, &out)
	if err != nil {
		return nil, err
	}
	return out.Handles(), nil
}

// Submit posts a job request to API_JOBS, to be assembled & launched server side.
func (c *Client) Submit(ctx context.Context, req *structs.JobRequest) ([]structs.JobHandle, error) {
	var out common.LaunchResponse
	err := c.genericPost(ctx, c.addr(common.API_JOBS), req, &out)
	if err != nil {
		return nil, err
	}
	return out.Handles(), nil
}

// Compile asks the server to assemble the request without launching it.
func (c *Client) Compile(ctx context.Context, req *structs.JobRequest) (*structs.JobGraph, error) {
	var out structs.JobGraph
	return &out, c.genericPost(ctx, c.addr(common.API_COMPILE), req, &out)
}

// Sequences asks the server to group the given paths into sequences.
func (c *Client) Sequences(ctx context.Context, in *common.SequencesRequest) (common.SequencesResponse, error) {
	var out common.SequencesResponse
	return out, c.genericPost(ctx, c.addr(common.API_SEQUENCES), in, &out)
}

// Health returns the server's health & name.
func (c *Client) Health(ctx context.Context) (*common.HealthResponse, error) {
	var out common.HealthResponse
	return &out, c.genericGet(ctx, c.addr(common.API_HEALTH), &out)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
