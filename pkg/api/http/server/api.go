package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/voidshard/cuesubmit/pkg/api/http/common"
	"github.com/voidshard/cuesubmit/pkg/errors"
	"github.com/voidshard/cuesubmit/pkg/fileseq"
	"github.com/voidshard/cuesubmit/pkg/structs"
)

const (
	wait = 30 * time.Second
)

// Service is what the server needs from a submit.Submitter.
type Service interface {
	Compile(req *structs.JobRequest) (*structs.JobGraph, error)
	Submit(ctx context.Context, req *structs.JobRequest) ([]structs.JobHandle, error)
}

type Server struct {
	addr       string
	name       string
	debug      bool
	tls        *tls.Config
	svc        Service
	exit       chan os.Signal
	httpserver *http.Server
}

// Router returns the handler serving the API.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(common.API_HEALTH, s.Health).Methods(http.MethodGet)
	router.HandleFunc(common.API_COMPILE, s.Compile).Methods(http.MethodPost)
	router.HandleFunc(common.API_JOBS, s.Jobs).Methods(http.MethodPost)
	router.HandleFunc(common.API_SEQUENCES, s.Sequences).Methods(http.MethodPost)

	if s.debug {
		log.Debug().Msg("debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}
	return router
}

// ServeForever serves until interrupted or Close is called.
func (s *Server) ServeForever() error {
	s.httpserver = &http.Server{
		Handler:      s.Router(),
		Addr:         s.addr,
		TLSConfig:    s.tls,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("name", s.name).Str("addr", s.httpserver.Addr).Bool("tls", s.tls != nil).Msg("listening")
		var err error
		if s.tls != nil {
			err = s.httpserver.ListenAndServeTLS("", "") // certs are already in the TLSConfig
		} else {
			err = s.httpserver.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	defer signal.Stop(s.exit)

	select {
	case err := <-errs:
		return err
	case <-s.exit:
	}

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

// Compile assembles a job without launching it, returning the graph.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	req := &structs.JobRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	graph, err := s.svc.Compile(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJson(w, graph)
}

// Jobs assembles & launches a job.
func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	req := &structs.JobRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	handles, err := s.svc.Submit(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if s.debug {
		log.Debug().Str("job", req.Name).Int("launched", len(handles)).Msg("submitted job")
	}
	writeJson(w, common.NewLaunchResponse(handles))
}

// Sequences groups the given paths into file sequences.
func (s *Server) Sequences(w http.ResponseWriter, r *http.Request) {
	req := &common.SequencesRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}
	if len(req.Paths) == 0 {
		writeError(w, r, errors.ErrEmptySequence)
		return
	}

	out := common.SequencesResponse{}
	for _, seq := range fileseq.GroupIntoSequences(req.Paths) {
		desc, err := common.NewSequence(seq, req.Sizes)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out = append(out, desc)
	}
	writeJson(w, out)
}

// Close asks ServeForever to shut down. It never blocks & may be called more than once.
func (s *Server) Close() error {
	select {
	case s.exit <- os.Interrupt:
	default: // shutdown already requested
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJson(w, &common.HealthResponse{OK: true, Name: s.name})
}

// NewServer returns a server on addr, reporting itself as name.
// tlsConfig may be nil to serve plain HTTP.
func NewServer(addr, name string, svc Service, tlsConfig *tls.Config, debug bool) *Server {
	return &Server{
		addr:  addr,
		name:  name,
		debug: debug,
		tls:   tlsConfig,
		svc:   svc,
		exit:  make(chan os.Signal, 1),
	}
}
