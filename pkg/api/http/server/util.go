package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	ie "github.com/voidshard/cuesubmit/pkg/errors"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusBadRequest: []error{
			ie.ErrNoLayers,
			ie.ErrInvalidArg,
			ie.ErrInvalidLayerSettings,
			ie.ErrUnknownLayerType,
			ie.ErrEmptySequence,
		},
		http.StatusNotImplemented: []error{
			ie.ErrNotSupported,
		},
	}
)

// mapError returns the http status code for a given error, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err with its mapped status code. Server side errors are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := mapError(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("uri", r.RequestURI).Int("code", code).Msg("request failed")
	}
	http.Error(w, err.Error(), code)
}

func writeJson(w http.ResponseWriter, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// unmarshalJson reads the body of a request and attempts to unmarshal it into the given object.
// This function write an error to the writer if an error occurs, and returns the error.
func unmarshalJson(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return fmt.Errorf("no body")
	}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields() // catch unwanted fields

	err := d.Decode(obj)
	if err != nil {
		// bad JSON or unrecognized json field
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad json: %v", err)
	}

	return nil
}
